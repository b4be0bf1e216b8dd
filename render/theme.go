package render

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

var (
	boxColor          = color.NRGBA{R: 0x3d, G: 0x9f, B: 0xff, A: 0xff}
	boxHighlightColor = color.NRGBA{R: 0xff, G: 0xc1, B: 0x07, A: 0xff}
	trackColor        = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0x30}
)

// BoxColor is the fill of the animated box.
func BoxColor() color.Color { return boxColor }

// BoxHighlightColor outlines the box while the pointer is over the track.
func BoxHighlightColor() color.Color { return boxHighlightColor }

// TrackColor is the translucent background of the track.
func TrackColor() color.Color { return trackColor }

type MainTheme struct {
	fyne.Theme
}

func defaultThemeSizes() map[fyne.ThemeSizeName]float32 {
	return map[fyne.ThemeSizeName]float32{
		theme.SizeNameInlineIcon:         float32(18),
		theme.SizeNameInnerPadding:       float32(8),
		theme.SizeNameLineSpacing:        float32(4),
		theme.SizeNamePadding:            float32(6),
		theme.SizeNameScrollBar:          float32(10),
		theme.SizeNameScrollBarSmall:     float32(2),
		theme.SizeNameSeparatorThickness: float32(1),
		theme.SizeNameText:               float32(15),
		theme.SizeNameHeadingText:        float32(26),
		theme.SizeNameSubHeadingText:     float32(20),
		theme.SizeNameCaptionText:        float32(12),
		theme.SizeNameInputBorder:        float32(2),
	}
}

func (m MainTheme) Size(name fyne.ThemeSizeName) float32 {
	if size, ok := defaultThemeSizes()[name]; ok {
		return size
	}
	return m.Theme.Size(name)
}

func (m MainTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return boxColor
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff} // lighter text
		}
		return color.NRGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 0xff}
		}
		return color.NRGBA{R: 0xf8, G: 0xf8, B: 0xf8, A: 0xff}
	case theme.ColorNameDisabled:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 0x60, G: 0x60, B: 0x60, A: 0xff}
		}
		return color.NRGBA{R: 0xa0, G: 0xa0, B: 0xa0, A: 0xff}
	default:
		return m.Theme.Color(name, variant)
	}
}
