package poster

import (
	"fmt"

	"github.com/numberourdays/numberourdays/internal/config"
)

// Color is an RGB color.
type Color struct {
	R, G, B uint8
}

// Hex builds a Color from a 0xRRGGBB literal.
func Hex(v uint32) Color {
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

var (
	black = Hex(0x000000)
	white = Hex(0xFFFFFF)
)

// Theme is the visual encoding of the poster. Only colors, stroke widths
// and legend decoration vary between themes; geometry never does.
type Theme struct {
	Name config.ThemeName

	Ink         Color // text and frames
	GridLine    Color
	Lived       Color
	Unlived     Color
	Current     Color
	CurrentMark Color
	Expectancy  Color

	GridLineWidth       float64
	ExpectancyLineWidth float64

	// LegendFrame draws a box around the legend.
	LegendFrame bool
	// SummaryFrame draws a box around the summary.
	SummaryFrame bool
}

// NewTheme returns the poster theme for a configured name.
func NewTheme(name config.ThemeName) (Theme, error) {
	switch name {
	case config.ThemeClassic, "":
		return classicTheme(), nil
	case config.ThemeSepia:
		return sepiaTheme(), nil
	default:
		return Theme{}, fmt.Errorf("unknown theme: %s", name)
	}
}

// classicTheme is gray for lived weeks, a blue current week with a white
// diamond, and a red X at life expectancy.
func classicTheme() Theme {
	return Theme{
		Name:                config.ThemeClassic,
		Ink:                 black,
		GridLine:            black,
		Lived:               Hex(0xAAAAAA),
		Unlived:             white,
		Current:             Hex(0x0000FF),
		CurrentMark:         white,
		Expectancy:          Hex(0xFF0000),
		GridLineWidth:       1,
		ExpectancyLineWidth: 1.5,
		LegendFrame:         true,
		SummaryFrame:        true,
	}
}

// sepiaTheme is a softer print palette with hairline cells.
func sepiaTheme() Theme {
	return Theme{
		Name:                config.ThemeSepia,
		Ink:                 Hex(0x3B2F2F),
		GridLine:            Hex(0x5A4632),
		Lived:               Hex(0xB9A58A),
		Unlived:             Hex(0xFFFDF7),
		Current:             Hex(0x1F5C5C),
		CurrentMark:         Hex(0xFFFDF7),
		Expectancy:          Hex(0xA4161A),
		GridLineWidth:       0.5,
		ExpectancyLineWidth: 1.2,
		LegendFrame:         false,
		SummaryFrame:        true,
	}
}
