package plot

import "github.com/gdamore/tcell/v2"

// Palette, Tokyo Night background
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)
	RgbAxis       = tcell.NewRGBColor(120, 124, 153) // Muted slate for frame and ticks
	RgbTickLabel  = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbLabel      = tcell.NewRGBColor(220, 220, 220)
	RgbTitle      = tcell.NewRGBColor(255, 255, 255)

	RgbPath   = tcell.NewRGBColor(100, 150, 255) // Matplotlib 'b-'
	RgbMarker = tcell.NewRGBColor(255, 80, 80)   // Matplotlib 'ro'

	RgbStatusText = tcell.NewRGBColor(0, 0, 0)
	RgbStatusBg   = tcell.NewRGBColor(135, 206, 250) // Light sky blue while flying
	RgbDoneBg     = tcell.NewRGBColor(144, 238, 144) // Light grass green once landed
	RgbWarning    = tcell.NewRGBColor(255, 165, 0)
)

// Glyphs
const (
	GlyphPath   = '•'
	GlyphMarker = '●'
)

func baseStyle() tcell.Style {
	return tcell.StyleDefault.Background(RgbBackground)
}

// pathStyle is shared by the path cells and the legend sample
func pathStyle() tcell.Style {
	return baseStyle().Foreground(RgbPath)
}

func markerStyle() tcell.Style {
	return baseStyle().Foreground(RgbMarker).Bold(true)
}
