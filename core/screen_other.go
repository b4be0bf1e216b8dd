//go:build !darwin

package core

import "fyne.io/fyne/v2"

// maxWindowSize falls back to a common desktop resolution off macOS.
func maxWindowSize() fyne.Size {
	return fyne.NewSize(1920, 1080)
}
