// Package theme stores keyboard appearance attributes and resolves them by
// compound selector: an attribute group can be narrowed per key label and
// per caps-state qualifier, and values may reference other attributes.
package theme

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Attr identifies one themable attribute inside a selector group.
type Attr struct {
	Group string
	Name  string
}

// Attributes consumed by the key grid.
var (
	KeyboardBackground = Attr{"keyboard", "background"}

	KeyBackground        = Attr{"key", "background"}
	KeyBackgroundPressed = Attr{"key", "backgroundPressed"}
	KeyForeground        = Attr{"key", "foreground"}
	KeyForegroundPressed = Attr{"key", "foregroundPressed"}
	KeyShowBorder        = Attr{"key", "showBorder"}

	SmartbarBackground          = Attr{"smartbar", "background"}
	SmartbarButtonBackground    = Attr{"smartbarButton", "background"}
	SmartbarButtonForeground    = Attr{"smartbarButton", "foreground"}
	SmartbarButtonForegroundAlt = Attr{"smartbarButton", "foregroundAlt"}

	WindowColorPrimary = Attr{"window", "colorPrimary"}
)

type ValueKind int

const (
	KindUndefined ValueKind = iota
	KindColor
	KindOnOff
	KindReference
)

// Value is one resolved or stored attribute value.
type Value struct {
	Kind  ValueKind
	Color sdl.Color
	On    bool
	Ref   Attr
}

func ColorValue(color sdl.Color) Value {
	return Value{Kind: KindColor, Color: color}
}

func OnOff(on bool) Value {
	return Value{Kind: KindOnOff, On: on}
}

func Reference(group, name string) Value {
	return Value{Kind: KindReference, Ref: Attr{Group: group, Name: name}}
}

// ToColor returns the color payload, or transparent black for non-color
// values so a miss stays visually obvious without crashing the frame.
func (v Value) ToColor() sdl.Color {
	if v.Kind != KindColor {
		return sdl.Color{}
	}
	return v.Color
}

// IsOn returns the boolean payload; non-boolean values read as off.
func (v Value) IsOn() bool {
	return v.Kind == KindOnOff && v.On
}

// Theme maps selectors to attribute values. A selector is a group name
// optionally narrowed by a key label and a state qualifier: "key",
// "key:a", "key:a:capslock".
type Theme struct {
	name  string
	attrs map[string]map[string]Value
}

func New(name string, attrs map[string]map[string]Value) *Theme {
	if attrs == nil {
		attrs = make(map[string]map[string]Value)
	}
	return &Theme{name: name, attrs: attrs}
}

func (t *Theme) Name() string {
	return t.name
}

// References may chain (a points at b points at c); anything deeper than
// this is a theme bug and resolves to undefined.
const maxRefDepth = 4

// Resolve looks an attribute up, most specific selector first: label plus
// qualifier, then label, then the bare group. References are followed.
func (t *Theme) Resolve(attr Attr, label, qualifier string) Value {
	return t.resolve(attr, label, qualifier, 0)
}

func (t *Theme) resolve(attr Attr, label, qualifier string, depth int) Value {
	if depth > maxRefDepth {
		return Value{}
	}

	selectors := make([]string, 0, 3)
	if label != "" && qualifier != "" {
		selectors = append(selectors, attr.Group+":"+label+":"+qualifier)
	}
	if label != "" {
		selectors = append(selectors, attr.Group+":"+label)
	}
	selectors = append(selectors, attr.Group)

	for _, selector := range selectors {
		group, ok := t.attrs[selector]
		if !ok {
			continue
		}
		value, ok := group[attr.Name]
		if !ok {
			continue
		}
		if value.Kind == KindReference {
			return t.resolve(value.Ref, "", "", depth+1)
		}
		return value
	}

	return Value{}
}
