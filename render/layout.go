package render

import (
	"fyne.io/fyne/v2"
)

// TrackLayout keeps the box inside a padded horizontal track. The box is
// placed at the left padding on the first pass only; later passes keep its X
// so a running move is not snapped back on resize.
type TrackLayout struct {
	left, right   float32
	boxSize       fyne.Size
	placed        bool
	onFirstLayout func()
}

// NewTrackLayout creates a layout for a box of boxSize between left and right padding.
func NewTrackLayout(boxSize fyne.Size, left, right float32) *TrackLayout {
	return &TrackLayout{left: left, right: right, boxSize: boxSize}
}

// Layout expects the track background, the tap area and the box, in that order.
func (l *TrackLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) != 3 {
		return
	}
	for _, o := range objects[:2] {
		o.Resize(size)
		o.Move(fyne.NewPos(0, 0))
	}

	box := objects[2]
	box.Resize(l.boxSize)
	x := box.Position().X
	if !l.placed {
		x = l.left
	}
	box.Move(fyne.NewPos(x, (size.Height-l.boxSize.Height)/2))

	// a pass narrower than the track minimum is not a real measurement yet
	if l.placed || size.Width < l.MinSize(nil).Width {
		return
	}
	l.placed = true
	// one-shot
	if cb := l.onFirstLayout; cb != nil {
		l.onFirstLayout = nil
		cb()
	}
}

// MinSize fits the box and both paddings.
func (l *TrackLayout) MinSize(_ []fyne.CanvasObject) fyne.Size {
	return fyne.NewSize(l.left+l.boxSize.Width+l.right, l.boxSize.Height+2*trackVerticalInset)
}

// FixedTrailingLayout gives a fixed width to the second item
// and allocates the remaining space to the first item.
type FixedTrailingLayout struct {
	trailingWidth float32
}

// NewFixedTrailingLayout creates a new instance of FixedTrailingLayout.
func NewFixedTrailingLayout(trailingWidth float32) *FixedTrailingLayout {
	return &FixedTrailingLayout{trailingWidth: trailingWidth}
}

// Layout is called to position the contained objects within the specified size.
func (l *FixedTrailingLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) != 2 {
		return
	}
	leadingSize := fyne.NewSize(size.Width-l.trailingWidth, size.Height)
	objects[0].Resize(leadingSize)
	objects[0].Move(fyne.NewPos(0, 0))

	objects[1].Resize(fyne.NewSize(l.trailingWidth, objects[1].MinSize().Height))
	objects[1].Move(fyne.NewPos(leadingSize.Width, (size.Height-objects[1].MinSize().Height)/2))
}

// MinSize calculates the minimum size of a container that uses this layout.
func (l *FixedTrailingLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var minWidth, minHeight float32
	for i, o := range objects {
		min := o.MinSize()
		if i == 0 {
			minWidth += min.Width
		}
		if min.Height > minHeight {
			minHeight = min.Height
		}
	}
	return fyne.NewSize(minWidth+l.trailingWidth, minHeight)
}
