package core

import (
	"fmt"
	"sort"
	"strings"
)

// Colour is a CSS rgba() value used to tag grades, lamps and difficulties.
// Presentation only; nothing in the registry branches on it.
type Colour string

// ColourNone marks a vocabulary entry that deliberately has no colour.
const ColourNone Colour = ""

// Named palette shared by every variant config.
const (
	ColourGray          Colour = "rgba(105, 105, 105, 1)"
	ColourMaroon        Colour = "rgba(85, 17, 17, 1)"
	ColourRed           Colour = "rgba(170, 85, 85, 1)"
	ColourPaleGreen     Colour = "rgba(142, 174, 79, 1)"
	ColourPaleBlue      Colour = "rgba(92, 97, 153, 1)"
	ColourGreen         Colour = "rgba(50, 205, 50, 1)"
	ColourBlue          Colour = "rgba(70, 130, 180, 1)"
	ColourGold          Colour = "rgba(255, 215, 0, 1)"
	ColourVibrantYellow Colour = "rgba(245, 229, 27, 1)"
	ColourTeal          Colour = "rgba(127, 255, 212, 1)"
	ColourWhite         Colour = "rgba(192, 192, 192, 1)"
	ColourPurple        Colour = "rgba(153, 50, 204, 1)"
	ColourVibrantPurple Colour = "rgba(161, 23, 230, 1)"
	ColourPaleOrange    Colour = "rgba(235, 151, 78, 1)"
	ColourOrange        Colour = "rgba(248, 148, 6, 1)"
	ColourVibrantOrange Colour = "rgba(248, 175, 6, 1)"
	ColourVibrantBlue   Colour = "rgba(43, 149, 237, 1)"
	ColourVibrantGreen  Colour = "rgba(26, 232, 26, 1)"
)

var paletteNames = map[Colour]string{
	ColourGray:          "gray",
	ColourMaroon:        "maroon",
	ColourRed:           "red",
	ColourPaleGreen:     "paleGreen",
	ColourPaleBlue:      "paleBlue",
	ColourGreen:         "green",
	ColourBlue:          "blue",
	ColourGold:          "gold",
	ColourVibrantYellow: "vibrantYellow",
	ColourTeal:          "teal",
	ColourWhite:         "white",
	ColourPurple:        "purple",
	ColourVibrantPurple: "vibrantPurple",
	ColourPaleOrange:    "paleOrange",
	ColourOrange:        "orange",
	ColourVibrantOrange: "vibrantOrange",
	ColourVibrantBlue:   "vibrantBlue",
	ColourVibrantGreen:  "vibrantGreen",
}

// Palette returns every named colour, sorted by name.
func Palette() []Colour {
	out := make([]Colour, 0, len(paletteNames))
	for c := range paletteNames {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		return paletteNames[out[i]] < paletteNames[out[j]]
	})
	return out
}

// Name returns the palette name of the colour, or "none"/"custom".
func (c Colour) Name() string {
	if c == ColourNone {
		return "none"
	}
	if n, ok := paletteNames[c]; ok {
		return n
	}
	return "custom"
}

// Valid reports whether the colour is set.
func (c Colour) Valid() bool {
	return c != ColourNone
}

// InPalette reports whether the colour is one of the named palette entries.
func (c Colour) InPalette() bool {
	_, ok := paletteNames[c]
	return ok
}

// RGB parses the rgba() value. Alpha is ignored.
func (c Colour) RGB() (r, g, b uint8, err error) {
	s := strings.TrimSpace(string(c))
	if !strings.HasPrefix(s, "rgba(") || !strings.HasSuffix(s, ")") {
		return 0, 0, 0, fmt.Errorf("colour %q: not an rgba() value", s)
	}
	parts := strings.Split(s[len("rgba("):len(s)-1], ",")
	if len(parts) != 4 {
		return 0, 0, 0, fmt.Errorf("colour %q: expected 4 components, got %d", s, len(parts))
	}

	var rgb [3]uint8
	for i := range rgb {
		var v int
		if _, err := fmt.Sscanf(strings.TrimSpace(parts[i]), "%d", &v); err != nil {
			return 0, 0, 0, fmt.Errorf("colour %q: component %d: %w", s, i, err)
		}
		if v < 0 || v > 255 {
			return 0, 0, 0, fmt.Errorf("colour %q: component %d out of range", s, i)
		}
		rgb[i] = uint8(v)
	}
	return rgb[0], rgb[1], rgb[2], nil
}

// Hex returns the colour as #rrggbb, or "" if it cannot be parsed.
func (c Colour) Hex() string {
	r, g, b, err := c.RGB()
	if err != nil {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
