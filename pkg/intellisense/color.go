package intellisense

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dimelords/skinlang/pkg/classmodel"
)

// Color is an RGBA color value, each component 0-255.
type Color struct {
	R, G, B, A uint8
}

// ParseColor parses a literal hex color: "#RGB", "#RGBA", "#RRGGBB", or
// "#RRGGBBAA", case-insensitive. A missing alpha channel defaults to
// fully opaque. It does not resolve default-color names; use
// ResolveColor for that.
func ParseColor(text string) (Color, bool) {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "#") {
		return Color{}, false
	}
	s = s[1:]

	switch len(s) {
	case 3, 4:
		// Shorthand: each hex digit is doubled ("f" -> "ff").
		chans := make([]uint8, len(s))
		for i, ch := range s {
			v, err := strconv.ParseUint(string(ch), 16, 8)
			if err != nil {
				return Color{}, false
			}
			chans[i] = uint8(v)*16 + uint8(v)
		}
		c := Color{R: chans[0], G: chans[1], B: chans[2], A: 255}
		if len(chans) == 4 {
			c.A = chans[3]
		}
		return c, true
	case 6, 8:
		v, err := strconv.ParseUint(s[0:6], 16, 32)
		if err != nil {
			return Color{}, false
		}
		c := Color{
			R: uint8(v >> 16),
			G: uint8(v >> 8),
			B: uint8(v),
			A: 255,
		}
		if len(s) == 8 {
			a, err := strconv.ParseUint(s[6:8], 16, 8)
			if err != nil {
				return Color{}, false
			}
			c.A = uint8(a)
		}
		return c, true
	default:
		return Color{}, false
	}
}

// ResolveColor resolves text as a color literal, following the
// class-model default-color table when text is a name rather than a
// "#..." literal. Chains of named colors are followed up to a small
// fixed depth to guard against a self-referencing table.
func ResolveColor(text string, classes *classmodel.Manager) (Color, bool) {
	cur := text
	for depth := 0; depth < 8; depth++ {
		if c, ok := ParseColor(cur); ok {
			return c, true
		}
		if classes == nil {
			return Color{}, false
		}
		next, ok := classes.DefaultColor(cur)
		if !ok {
			return Color{}, false
		}
		cur = next
	}
	return Color{}, false
}

// String renders c as "#rrggbbaa", lowercase. Round-trips through
// ParseColor to an equal Color (spec.md §8 property 3): every channel
// is preserved exactly, not merely to within 1/255, since String never
// loses precision the way a float-channel representation would.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// Equal reports whether c and other match component-wise within the
// 1-unit (1/255) tolerance spec.md §8 property 3 allows.
func (c Color) Equal(other Color) bool {
	return closeByte(c.R, other.R) && closeByte(c.G, other.G) &&
		closeByte(c.B, other.B) && closeByte(c.A, other.A)
}

func closeByte(a, b uint8) bool {
	if a > b {
		return a-b <= 1
	}
	return b-a <= 1
}
