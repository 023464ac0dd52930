package theme

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

var rgbaType = reflect.TypeOf(color.RGBA{})

// Parse reads a theme definition from r. Each line is `Key: colour`; keys
// match Theme fields case-insensitively and unknown keys are ignored.
func Parse(r io.Reader) (*Theme, error) {
	t := Default()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		if err := Set(t, strings.TrimSpace(key), strings.TrimSpace(value)); err != nil {
			return nil, err
		}
	}
	return t, scanner.Err()
}

// Set assigns value to the field named key.
func Set(t *Theme, key, value string) error {
	if strings.EqualFold(key, "Name") {
		t.Name = value
		return nil
	}
	field := reflect.ValueOf(t).Elem().FieldByNameFunc(func(name string) bool {
		return strings.EqualFold(name, key)
	})
	if !field.IsValid() || field.Type() != rgbaType {
		return nil
	}
	col, err := ParseColor(value)
	if err != nil {
		return fmt.Errorf("invalid color for key %s: %w", key, err)
	}
	field.Set(reflect.ValueOf(col))
	return nil
}

// Field is one named colour of a theme.
type Field struct {
	Name  string
	Color color.RGBA
}

// Fields lists every colour of t in declaration order.
func Fields(t *Theme) []Field {
	val := reflect.ValueOf(t).Elem()
	typ := val.Type()
	var out []Field
	for i := 0; i < typ.NumField(); i++ {
		if typ.Field(i).Type != rgbaType {
			continue
		}
		out = append(out, Field{Name: typ.Field(i).Name, Color: val.Field(i).Interface().(color.RGBA)})
	}
	return out
}

// ParseColor accepts #RRGGBB, #RRGGBBAA or an SVG colour name.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		if c, ok := colornames.Map[strings.ToLower(s)]; ok {
			return c, nil
		}
		return color.RGBA{}, fmt.Errorf("unknown color %q", s)
	}
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 6:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, err
		}
		return color.RGBA{R: uint8(val >> 16), G: uint8(val >> 8), B: uint8(val), A: 255}, nil
	case 8:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, err
		}
		return color.RGBA{R: uint8(val >> 24), G: uint8(val >> 16), B: uint8(val >> 8), A: uint8(val)}, nil
	}
	return color.RGBA{}, fmt.Errorf("invalid hex length")
}

// FormatColor renders c as #RRGGBB, or #RRGGBBAA when it is translucent.
func FormatColor(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}
