package render

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

const trackVerticalInset = 12

// Stage is the padded track with the animated box on it. It reports the
// box geometry for the toggle controller.
type Stage struct {
	Container *fyne.Container
	Box       *canvas.Rectangle
	track     *canvas.Rectangle
	layout    *TrackLayout
}

// NewStage builds a track whose box is boxSize large. onTap is called when
// the track is clicked.
func NewStage(boxSize fyne.Size, left, right float32, onTap func()) *Stage {
	s := &Stage{
		Box:    canvas.NewRectangle(BoxColor()),
		track:  canvas.NewRectangle(TrackColor()),
		layout: NewTrackLayout(boxSize, left, right),
	}
	s.Box.CornerRadius = 6
	s.Box.StrokeColor = BoxHighlightColor()
	s.track.CornerRadius = 4
	area := newTrackArea(onTap, s.highlight)
	s.Container = container.New(s.layout, s.track, area, s.Box)
	return s
}

// OnFirstLayout registers fn to run once, after the stage was laid out at least
// as wide as its minimum.
// Registering after that pass has happened runs fn immediately.
func (s *Stage) OnFirstLayout(fn func()) {
	if s.layout.placed {
		fn()
		return
	}
	s.layout.onFirstLayout = fn
}

func (s *Stage) highlight(on bool) {
	if on {
		s.Box.StrokeWidth = 2
	} else {
		s.Box.StrokeWidth = 0
	}
	s.Box.Refresh()
}

// ContainerWidth is the full track width.
func (s *Stage) ContainerWidth() float32 {
	return s.Container.Size().Width
}

// ContainerPadding is the inset the box keeps from each track edge.
func (s *Stage) ContainerPadding() (float32, float32) {
	return s.layout.left, s.layout.right
}

// ElementWidth is the rendered box width.
func (s *Stage) ElementWidth() float32 {
	return s.Box.Size().Width
}

// ElementX is the box position relative to the track.
func (s *Stage) ElementX() float32 {
	return s.Box.Position().X
}
