// internal/defs/types.go
package defs

import (
	"fmt"
	"image/color"

	"gopkg.in/yaml.v3"
)

// Color — обертка над color.RGBA с поддержкой YAML-формата "#RRGGBB".
type Color struct {
	color.RGBA
}

// UnmarshalYAML разбирает цвет из строки вида "#RRGGBB" или "#RRGGBBAA".
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	rgba, err := ParseHexColor(s)
	if err != nil {
		return err
	}
	c.RGBA = rgba
	return nil
}

// ParseHexColor разбирает строку "#RRGGBB" / "#RRGGBBAA" в color.RGBA.
func ParseHexColor(s string) (color.RGBA, error) {
	var r, g, b, a uint8
	a = 0xff
	switch len(s) {
	case 7:
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
			return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
	case 9:
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
			return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
	default:
		return color.RGBA{}, fmt.Errorf("invalid color %q: expected #RRGGBB or #RRGGBBAA", s)
	}
	return color.RGBA{R: r, G: g, B: b, A: a}, nil
}

// Visuals — параметры отрисовки сущности.
type Visuals struct {
	Color  Color   `yaml:"color"`
	Radius float32 `yaml:"radius"`
}
