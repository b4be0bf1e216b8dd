package core

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/hamidzr/movebox/model"
	"github.com/hamidzr/movebox/render"
	"github.com/hamidzr/movebox/store"
	"github.com/sirupsen/logrus"
)

// GUI holds ui pieces.
type GUI struct {
	MainWindow fyne.Window
	Stage      *render.Stage
	Readouts   *render.Readouts
	MoveButton *widget.Button
}

// MoveBox is the fyne host for a PositionToggle.
type MoveBox struct {
	cfg       *model.Config
	app       fyne.App
	ui        *GUI
	toggle    *PositionToggle
	cache     store.Store[store.WindowCache]
	isRunning bool
	log       *logrus.Entry
}

// NewMoveBox builds the window. cache may be nil, in which case the window
// size is never remembered.
func NewMoveBox(fyneApp fyne.App, cfg *model.Config, cache store.Store[store.WindowCache]) (*MoveBox, error) {
	curve, err := render.CurveByName(cfg.Easing)
	if err != nil {
		return nil, err
	}
	m := &MoveBox{
		cfg:   cfg,
		app:   fyneApp,
		cache: cache,
		log:   logrus.WithField("component", "gui"),
	}
	if err := m.initUI(curve); err != nil {
		return nil, err
	}
	return m, nil
}

// one time init for ui elements.
func (m *MoveBox) initUI(curve fyne.AnimationCurve) error {
	if m.ui != nil {
		return errors.New("ui is already initialized")
	}
	m.app.Settings().SetTheme(render.MainTheme{Theme: theme.DefaultTheme()})

	window := m.app.NewWindow(m.cfg.Title)
	readouts := render.NewReadouts()
	button := widget.NewButton("Move", m.trigger)
	// enabled once the stage geometry is known
	button.Disable()
	stage := render.NewStage(
		fyne.NewSize(m.cfg.ElementWidth, m.cfg.ElementHeight),
		m.cfg.PaddingLeft, m.cfg.PaddingRight,
		m.trigger,
	)

	toggle, err := NewPositionToggle(m.cfg, render.NewAnimator(stage.Box, curve), readouts)
	if err != nil {
		return err
	}
	m.toggle = toggle

	window.SetContent(container.NewBorder(nil, render.NewControlBar(readouts, button), nil, nil, stage.Container))
	window.Resize(m.windowSize())
	window.Canvas().SetOnTypedKey(m.handleKey)
	window.SetCloseIntercept(m.Quit)

	m.ui = &GUI{
		MainWindow: window,
		Stage:      stage,
		Readouts:   readouts,
		MoveButton: button,
	}
	return nil
}

// captureWhenLaidOut hands the stage geometry to the toggle once the stage
// has a real size.
func (m *MoveBox) captureWhenLaidOut() {
	m.ui.Stage.OnFirstLayout(func() {
		if m.toggle.Initialize(m.ui.Stage) {
			m.ui.MoveButton.Enable()
		}
	})
}

// windowSize prefers the remembered size over the configured one.
func (m *MoveBox) windowSize() fyne.Size {
	size := fyne.NewSize(m.cfg.WindowWidth, m.cfg.WindowHeight)
	if !m.cfg.RememberWindow || m.cache == nil {
		return size
	}
	cached, err := m.cache.LoadCache()
	if err != nil {
		m.log.WithError(err).Warn("ignoring window cache")
		return size
	}
	if cached.Valid() {
		bounds := maxWindowSize()
		return fyne.NewSize(
			model.Clamp(cached.Width, 1, bounds.Width),
			model.Clamp(cached.Height, 1, bounds.Height),
		)
	}
	return size
}

func (m *MoveBox) saveWindowSize() {
	if !m.cfg.RememberWindow || m.cache == nil {
		return
	}
	var cached store.WindowCache
	size := m.ui.MainWindow.Canvas().Size()
	cached.SetSize(size.Width, size.Height)
	if err := m.cache.SaveCache(cached); err != nil {
		m.log.WithError(err).Error("failed to save window size")
	}
}

// Toggle exposes the controller behind the window.
func (m *MoveBox) Toggle() *PositionToggle {
	return m.toggle
}

// RunAppForever shows the window and blocks until the app quits.
func (m *MoveBox) RunAppForever() error {
	if m.isRunning {
		return errors.New("run called multiple times")
	}
	m.isRunning = true
	m.app.Lifecycle().SetOnStarted(m.captureWhenLaidOut)
	m.ui.MainWindow.Show()
	m.app.Run()
	return nil
}

// Quit remembers the window size, stops any move and exits the app.
func (m *MoveBox) Quit() {
	m.log.Debug("quitting")
	m.saveWindowSize()
	m.toggle.Close()
	m.app.Quit()
}
