package theme

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/veandco/go-sdl2/sdl"
)

// tomlTheme mirrors the on-disk layout: selector tables of string values
// under [attributes], e.g.
//
//	name = "forest"
//
//	[attributes.key]
//	background = "#3C4043"
//
//	[attributes."key:enter"]
//	background = "@window/colorPrimary"
type tomlTheme struct {
	Name       string                       `toml:"name"`
	Attributes map[string]map[string]string `toml:"attributes"`
}

// Load reads a TOML theme file and layers it over a base theme, so a file
// only has to name the attributes it changes.
func Load(path string, base *Theme) (*Theme, error) {
	var raw tomlTheme
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, fmt.Errorf("failed to read theme file %s: %w", path, err)
	}

	attrs := make(map[string]map[string]Value)
	if base != nil {
		for selector, group := range base.attrs {
			copied := make(map[string]Value, len(group))
			for name, value := range group {
				copied[name] = value
			}
			attrs[selector] = copied
		}
	}

	for selector, group := range raw.Attributes {
		target, ok := attrs[selector]
		if !ok {
			target = make(map[string]Value, len(group))
			attrs[selector] = target
		}
		for name, rawValue := range group {
			value, err := ParseValue(rawValue)
			if err != nil {
				return nil, fmt.Errorf("theme %s, attribute %s.%s: %w", path, selector, name, err)
			}
			target[name] = value
		}
	}

	name := raw.Name
	if name == "" && base != nil {
		name = base.name
	}

	return New(name, attrs), nil
}

// ParseValue turns a theme file string into a Value: "#RRGGBB" or
// "#RRGGBBAA" colors, "true"/"false" switches, "@group/attr" references.
func ParseValue(raw string) (Value, error) {
	raw = strings.TrimSpace(raw)

	switch {
	case raw == "":
		return Value{}, nil

	case strings.HasPrefix(raw, "#"):
		color, err := parseHexColor(raw)
		if err != nil {
			return Value{}, err
		}
		return ColorValue(color), nil

	case raw == "true" || raw == "false":
		return OnOff(raw == "true"), nil

	case strings.HasPrefix(raw, "@"):
		group, name, ok := strings.Cut(raw[1:], "/")
		if !ok || group == "" || name == "" {
			return Value{}, fmt.Errorf("malformed reference %q", raw)
		}
		return Reference(group, name), nil

	default:
		return Value{}, fmt.Errorf("unrecognized value %q", raw)
	}
}

func parseHexColor(raw string) (sdl.Color, error) {
	digits := raw[1:]
	if len(digits) != 6 && len(digits) != 8 {
		return sdl.Color{}, fmt.Errorf("malformed color %q", raw)
	}

	n, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return sdl.Color{}, fmt.Errorf("malformed color %q: %w", raw, err)
	}

	if len(digits) == 6 {
		n = n<<8 | 0xFF
	}

	return sdl.Color{
		R: uint8(n >> 24),
		G: uint8(n >> 16),
		B: uint8(n >> 8),
		A: uint8(n),
	}, nil
}
