package chart

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// parseColor accepts SVG 1.1 color names (e.g. "skyblue") and
// #RGB/#RRGGBB/#RRGGBBAA hex notation.
func parseColor(s string) (color.Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return nil, fmt.Errorf("empty color")
	}
	if strings.HasPrefix(name, "#") {
		return parseHexColor(name)
	}
	if c, ok := colornames.Map[name]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("unknown color %q", s)
}

func parseHexColor(s string) (color.Color, error) {
	digits := s[1:]

	if len(digits) == 3 {
		digits = string([]byte{
			digits[0], digits[0],
			digits[1], digits[1],
			digits[2], digits[2],
		})
	}
	if len(digits) != 6 && len(digits) != 8 {
		return nil, fmt.Errorf("invalid hex color %q", s)
	}

	v, err := strconv.ParseUint(digits, 16, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid hex color %q", s)
	}

	c := color.NRGBA{A: 0xff}
	switch len(digits) {
	case 6:
		c.R = uint8(v >> 16)
		c.G = uint8(v >> 8)
		c.B = uint8(v)
	case 8:
		c.R = uint8(v >> 24)
		c.G = uint8(v >> 16)
		c.B = uint8(v >> 8)
		c.A = uint8(v)
	}
	return c, nil
}
