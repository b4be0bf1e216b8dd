package core

import (
	"fyne.io/fyne/v2"
	"github.com/hamidzr/movebox/model"
)

func (m *MoveBox) trigger() {
	if _, err := m.toggle.Trigger(); err != nil {
		m.log.WithError(err).Debug("move not started")
	}
}

// triggerToward moves only when the box is headed away from side.
func (m *MoveBox) triggerToward(side model.ToggleState) {
	if m.toggle.State() == side {
		return
	}
	m.trigger()
}

func (m *MoveBox) handleKey(key *fyne.KeyEvent) {
	switch key.Name {
	case fyne.KeySpace, fyne.KeyReturn, fyne.KeyEnter:
		m.trigger()
	case fyne.KeyLeft:
		m.triggerToward(model.AtLeft)
	case fyne.KeyRight:
		m.triggerToward(model.AtRight)
	case fyne.KeyEscape:
		m.Quit()
	}
}
