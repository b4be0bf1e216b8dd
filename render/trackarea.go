package render

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// trackArea is a transparent surface under the box: tapping anywhere on the
// track triggers a move, hovering highlights the box.
type trackArea struct {
	widget.BaseWidget
	onTap   func()
	onHover func(bool)
}

var (
	_ fyne.Tappable      = (*trackArea)(nil)
	_ desktop.Hoverable  = (*trackArea)(nil)
	_ desktop.Cursorable = (*trackArea)(nil)
)

func newTrackArea(onTap func(), onHover func(bool)) *trackArea {
	area := &trackArea{onTap: onTap, onHover: onHover}
	area.ExtendBaseWidget(area)
	return area
}

func (a *trackArea) Tapped(_ *fyne.PointEvent) {
	if a.onTap != nil {
		a.onTap()
	}
}

func (a *trackArea) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

func (a *trackArea) MouseIn(_ *desktop.MouseEvent) {
	if a.onHover != nil {
		a.onHover(true)
	}
}

func (a *trackArea) MouseMoved(_ *desktop.MouseEvent) {}

func (a *trackArea) MouseOut() {
	if a.onHover != nil {
		a.onHover(false)
	}
}

func (a *trackArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(canvas.NewRectangle(color.Transparent))
}
