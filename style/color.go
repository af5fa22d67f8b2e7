package style

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/datanger/PPTCheker/model"
)

// paletteEntry is one of the nine named colors. Nearest-color ties break by
// table order, so the order here is part of the contract.
type paletteEntry struct {
	name    string
	r, g, b int
}

var palette = []paletteEntry{
	{"black", 0x00, 0x00, 0x00},
	{"white", 0xFF, 0xFF, 0xFF},
	{"red", 0xFF, 0x00, 0x00},
	{"green", 0x00, 0xFF, 0x00},
	{"blue", 0x00, 0x00, 0xFF},
	{"yellow", 0xFF, 0xFF, 0x00},
	{"orange", 0xFF, 0xA5, 0x00},
	{"purple", 0x80, 0x00, 0x80},
	{"gray", 0x80, 0x80, 0x80},
}

// themeSlotRGB maps theme color roles to the Office default theme values.
// Slots not listed here leave the color unresolved.
var themeSlotRGB = map[string]string{
	"tx1":      "000000",
	"bg1":      "FFFFFF",
	"tx2":      "44546A",
	"bg2":      "E7E6E6",
	"dk1":      "000000",
	"lt1":      "FFFFFF",
	"dk2":      "44546A",
	"lt2":      "E7E6E6",
	"accent1":  "5B9BD5",
	"accent2":  "ED7D31",
	"accent3":  "A5A5A5",
	"accent4":  "FFC000",
	"accent5":  "4472C4",
	"accent6":  "70AD47",
	"hlink":    "0563C1",
	"folHlink": "954F72",
}

// NormalizeColor converts a raw color reference into a NormalizedColor.
// An explicit RGB value is used directly; a theme slot is mapped through the
// fixed slot table and then adjusted by the reference's brightness. The
// second return value is false when the reference cannot be resolved (no
// value at all, malformed hex, or an unmapped slot); the caller supplies the
// fallback in that case.
func NormalizeColor(ref model.ColorRef) (model.NormalizedColor, bool) {
	if ref.RGB != "" {
		r, g, b, ok := parseHex(ref.RGB)
		if !ok {
			return model.NormalizedColor{}, false
		}
		return normalized(r, g, b), true
	}

	if ref.ThemeSlot != "" {
		hex, ok := themeSlotRGB[ref.ThemeSlot]
		if !ok {
			return model.NormalizedColor{}, false
		}
		r, g, b, _ := parseHex(hex)
		r, g, b = applyBrightness(r, g, b, ref.Brightness)
		return normalized(r, g, b), true
	}

	return model.NormalizedColor{}, false
}

// applyBrightness adjusts each channel: positive brightness interpolates
// toward 255 (tint), negative scales toward 0 (shade). Results are rounded
// and clamped to [0, 255].
func applyBrightness(r, g, b int, brightness float64) (int, int, int) {
	if brightness == 0 {
		return r, g, b
	}

	adjust := func(c int) int {
		v := float64(c)
		if brightness > 0 {
			v = v + (255-v)*brightness
		} else {
			v = v * (1 + brightness)
		}
		return clampChannel(int(math.Round(v)))
	}
	return adjust(r), adjust(g), adjust(b)
}

func clampChannel(c int) int {
	if c < 0 {
		return 0
	}
	if c > 255 {
		return 255
	}
	return c
}

// nearestNamed returns the palette name with the minimum squared Euclidean
// distance to the given channels. Strict less-than keeps the first entry on
// ties.
func nearestNamed(r, g, b int) string {
	best := palette[0].name
	bestDist := math.MaxInt
	for _, p := range palette {
		dr, dg, db := r-p.r, g-p.g, b-p.b
		d := dr*dr + dg*dg + db*db
		if d < bestDist {
			bestDist = d
			best = p.name
		}
	}
	return best
}

func normalized(r, g, b int) model.NormalizedColor {
	return model.NormalizedColor{
		Hex:  fmt.Sprintf("#%02X%02X%02X", r, g, b),
		Name: nearestNamed(r, g, b),
	}
}

// parseHex parses a 6-hex-digit color, with or without a leading '#'.
func parseHex(s string) (r, g, b int, ok bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16), int(v >> 8 & 0xFF), int(v & 0xFF), true
}
