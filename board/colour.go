package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidColour = errors.New("invalid colour")

type Colour struct {
	R uint8
	G uint8
	B uint8
}

var (
	PacificPoint      = Colour{1, 128, 181}
	RealRed           = Colour{199, 44, 58}
	OldOlive          = Colour{138, 151, 71}
	DaffodilDelight   = Colour{255, 211, 92}
	MelonMambo        = Colour{234, 62, 112}
	TemptingTurquoise = Colour{75, 196, 213}
	Black             = Colour{0, 0, 0}
	White             = Colour{255, 255, 255}
)

// Palette is the set of colours a board is generated and smashed with.
var Palette = []Colour{PacificPoint, RealRed, OldOlive, DaffodilDelight}

var colourNames = map[Colour]string{
	PacificPoint:      "Pacific Point",
	RealRed:           "Real Red",
	OldOlive:          "Old Olive",
	DaffodilDelight:   "Daffodil Delight",
	MelonMambo:        "Melon Mambo",
	TemptingTurquoise: "Tempting Turquoise",
	Black:             "Black",
	White:             "White",
}

var namedColours = func() map[string]Colour {
	m := make(map[string]Colour, len(colourNames))
	for c, name := range colourNames {
		m[normalizeName(name)] = c
	}
	return m
}()

func normalizeName(s string) string {
	s = strings.ToLower(s)
	return strings.NewReplacer(" ", "", "_", "", "-", "").Replace(s)
}

// Name returns the display name of c, or rgb(r, g, b) when c is not a named colour.
func (c Colour) Name() string {
	if name, ok := colourNames[c]; ok {
		return name
	}
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

func (c Colour) String() string {
	return c.Name()
}

func (c Colour) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseColour accepts a colour name such as "real red" or "REAL_RED", or a hex
// triple in the form #rrggbb.
func ParseColour(s string) (Colour, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		if len(hex) != 6 {
			return Colour{}, fmt.Errorf("%w: %q", ErrInvalidColour, s)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return Colour{}, fmt.Errorf("%w: %q", ErrInvalidColour, s)
		}
		return Colour{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
	}

	c, ok := namedColours[normalizeName(s)]
	if !ok {
		return Colour{}, fmt.Errorf("%w: %q", ErrInvalidColour, s)
	}
	return c, nil
}

// UnmarshalYAML decodes a colour written as a name, a hex string or a list of
// three integers.
func (c *Colour) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err == nil {
		parsed, err := ParseColour(s)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}

	var rgb []int
	if err := unmarshal(&rgb); err != nil {
		return fmt.Errorf("%w: expected name or [r, g, b]", ErrInvalidColour)
	}
	if len(rgb) != 3 {
		return fmt.Errorf("%w: expected 3 components, got %d", ErrInvalidColour, len(rgb))
	}
	for _, v := range rgb {
		if v < 0 || v > 255 {
			return fmt.Errorf("%w: component %d out of range", ErrInvalidColour, v)
		}
	}
	*c = Colour{R: uint8(rgb[0]), G: uint8(rgb[1]), B: uint8(rgb[2])}
	return nil
}

func (c Colour) MarshalYAML() (interface{}, error) {
	if name, ok := colourNames[c]; ok {
		return name, nil
	}
	return c.Hex(), nil
}
