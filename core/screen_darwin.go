//go:build darwin

package core

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework CoreGraphics
#include <CoreGraphics/CoreGraphics.h>

// largest active display by area, main display when none are listed
void largestDisplay(int* width, int* height) {
	*width = 0;
	*height = 0;

	uint32_t count;
	CGDirectDisplayID displays[32];
	if (CGGetActiveDisplayList(32, displays, &count) == kCGErrorSuccess) {
		for (uint32_t i = 0; i < count; i++) {
			int w = (int)CGDisplayPixelsWide(displays[i]);
			int h = (int)CGDisplayPixelsHigh(displays[i]);
			if (w * h > (*width) * (*height)) {
				*width = w;
				*height = h;
			}
		}
	}
	if (*width == 0 || *height == 0) {
		*width = (int)CGDisplayPixelsWide(CGMainDisplayID());
		*height = (int)CGDisplayPixelsHigh(CGMainDisplayID());
	}
}
*/
import "C"

import "fyne.io/fyne/v2"

// maxWindowSize bounds restored window sizes to the largest display.
func maxWindowSize() fyne.Size {
	var width, height C.int
	C.largestDisplay(&width, &height)
	return fyne.NewSize(float32(width), float32(height))
}
