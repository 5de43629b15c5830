package keyboard

import "github.com/veandco/go-sdl2/sdl"

// DesiredKey is the per-layout-pass geometry stencil every concrete key is
// derived from. It is computed once per pass and never mutated afterwards;
// passes replace it wholesale.
type DesiredKey struct {
	Touch   sdl.FRect
	Visible sdl.FRect
	Label   sdl.FRect
	Icon    sdl.FRect
}

// NewDesiredKey derives the label and icon sub-boxes from the visible box.
// The label box keeps a sixth of the visible box free on each side; the
// icon box is a centered square at two thirds of the shorter visible edge.
func NewDesiredKey(touch, visible sdl.FRect) DesiredKey {
	label := sdl.FRect{
		X: visible.X + visible.W/6.0,
		Y: visible.Y + visible.H/6.0,
		W: visible.W * 2.0 / 3.0,
		H: visible.H * 2.0 / 3.0,
	}

	side := visible.W
	if visible.H < side {
		side = visible.H
	}
	side *= 2.0 / 3.0

	icon := sdl.FRect{
		X: visible.X + (visible.W-side)/2.0,
		Y: visible.Y + (visible.H-side)/2.0,
		W: side,
		H: side,
	}

	return DesiredKey{Touch: touch, Visible: visible, Label: label, Icon: icon}
}
