package model

import "fmt"

// RGB is a spending category's display color.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as "#RRGGBB".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ParseRGB parses a "#RRGGBB" string.
func ParseRGB(s string) (RGB, error) {
	var c RGB
	n, err := fmt.Sscanf(s, "#%02X%02X%02X", &c.R, &c.G, &c.B)
	if err != nil || n != 3 {
		return RGB{}, fmt.Errorf("invalid color %q", s)
	}
	return c, nil
}

// MarshalYAML encodes the color as a hex string.
func (c RGB) MarshalYAML() (interface{}, error) {
	return c.Hex(), nil
}

// UnmarshalYAML decodes a hex string color.
func (c *RGB) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseRGB(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Category is a user-facing spending bucket.
type Category struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Color RGB    `yaml:"color"`
}
