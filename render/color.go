package render

import (
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

// ParseColorMode maps a config value to a mode, unknown values fall back to detection
func ParseColorMode(s string) ColorMode {
	switch strings.ToLower(s) {
	case "truecolor", "24bit":
		return ColorModeTrueColor
	case "256":
		return ColorMode256
	default:
		return DetectColorMode()
	}
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}
	for _, key := range []string{"KITTY_WINDOW_ID", "KONSOLE_VERSION", "ITERM_SESSION_ID", "ALACRITTY_WINDOW_ID", "WEZTERM_PANE"} {
		if os.Getenv(key) != "" {
			return ColorModeTrueColor
		}
	}
	term := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(term, "truecolor") || strings.Contains(term, "24bit") || strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}
	return ColorMode256
}

// Color cube levels for the 6x6x6 palette (indices 16-231)
var cubeValues = [6]int{0, 95, 135, 175, 215, 255}

func cubeIndex(v int) int {
	best, bestDist := 0, abs(v-cubeValues[0])
	for i := 1; i < len(cubeValues); i++ {
		if d := abs(v - cubeValues[i]); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// RGBTo256 finds the nearest xterm-256 palette index for a 0xRRGGBB value
func RGBTo256(rgb uint32) uint8 {
	r, g, b := int(rgb>>16&0xff), int(rgb>>8&0xff), int(rgb&0xff)

	gray := (r + g + b) / 3
	if max(abs(r-gray), abs(g-gray), abs(b-gray)) < 10 {
		switch {
		case gray < 4:
			return 16
		case gray > 243:
			return 231
		}
		grayIdx := min(232+(gray-8)/10, 255)
		level := 8 + (grayIdx-232)*10
		grayDist := abs(r-level) + abs(g-level) + abs(b-level)

		cr, cg, cb := cubeIndex(r), cubeIndex(g), cubeIndex(b)
		cubeDist := abs(r-cubeValues[cr]) + abs(g-cubeValues[cg]) + abs(b-cubeValues[cb])
		if grayDist < cubeDist {
			return uint8(grayIdx)
		}
	}

	return uint8(16 + 36*cubeIndex(r) + 6*cubeIndex(g) + cubeIndex(b))
}

// Color resolves a 0xRRGGBB value for the given mode
func Color(rgb uint32, mode ColorMode) tcell.Color {
	if mode == ColorModeTrueColor {
		return tcell.NewHexColor(int32(rgb & 0xffffff))
	}
	return tcell.PaletteColor(int(RGBTo256(rgb)))
}

// Palette as 0xRRGGBB
const (
	RgbBackground  uint32 = 0x101418
	RgbGround      uint32 = 0x2a2f36
	RgbPlatform    uint32 = 0x5a6270
	RgbPlatformHi  uint32 = 0x8a93a3
	RgbLineGreen   uint32 = 0x20c040
	RgbLinePurple  uint32 = 0xa040e0
	RgbHuman       uint32 = 0xe8d8b0
	RgbIndicator   uint32 = 0xff3030
	RgbPanelText   uint32 = 0xd0d0d0
	RgbPanelLabel  uint32 = 0x80a0c0
	RgbPeak        uint32 = 0xffb000
	RgbPaused      uint32 = 0xff6060
	RgbInspectText uint32 = 0xffffff
)

// LineColor returns the track color for a line color name
func LineColor(name string) uint32 {
	if name == "purple" {
		return RgbLinePurple
	}
	return RgbLineGreen
}
