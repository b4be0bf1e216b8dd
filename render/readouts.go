package render

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/hamidzr/movebox/model"
)

const buttonWidth = 120

// Readouts shows the box coordinate, width and movement status.
type Readouts struct {
	Coordinate *widget.Label
	Width      *widget.Label
	Status     *widget.Label
	Container  *fyne.Container
}

// NewReadouts lays out the three labels as a two column form.
func NewReadouts() *Readouts {
	r := &Readouts{
		Coordinate: widget.NewLabel("-"),
		Width:      widget.NewLabel("-"),
		Status:     widget.NewLabel(model.StatusStationary),
	}
	r.Status.TextStyle = fyne.TextStyle{Bold: true}
	r.Container = container.New(layout.NewFormLayout(),
		widget.NewLabel("X"), r.Coordinate,
		widget.NewLabel("Width"), r.Width,
		widget.NewLabel("Status"), r.Status,
	)
	return r
}

func (r *Readouts) SetCoordinate(text string) { r.Coordinate.SetText(text) }

func (r *Readouts) SetWidth(text string) { r.Width.SetText(text) }

func (r *Readouts) SetStatus(text string) { r.Status.SetText(text) }

// NewControlBar returns the readouts with the move button pinned to the right.
func NewControlBar(readouts *Readouts, button *widget.Button) *fyne.Container {
	return container.New(NewFixedTrailingLayout(buttonWidth), readouts.Container, button)
}
