package internal

import (
	"github.com/veandco/go-sdl2/gfx"
	"github.com/veandco/go-sdl2/sdl"
)

func DrawRoundedRect(renderer *sdl.Renderer, rect *sdl.Rect, radius int32, color sdl.Color) {
	if radius <= 0 {
		renderer.SetDrawColor(color.R, color.G, color.B, color.A)
		renderer.FillRect(rect)
		return
	}

	gfx.BoxColor(
		renderer,
		rect.X+radius,
		rect.Y,
		rect.X+rect.W-radius,
		rect.Y+rect.H,
		color,
	)

	gfx.BoxColor(
		renderer,
		rect.X,
		rect.Y+radius,
		rect.X+radius,
		rect.Y+rect.H-radius,
		color,
	)
	gfx.BoxColor(
		renderer,
		rect.X+rect.W-radius,
		rect.Y+radius,
		rect.X+rect.W,
		rect.Y+rect.H-radius,
		color,
	)

	// Top-left corner
	drawRoundedCorner(renderer, rect.X+radius, rect.Y+radius, radius, color)
	// Top-right corner
	drawRoundedCorner(renderer, rect.X+rect.W-radius, rect.Y+radius, radius, color)
	// Bottom-left corner
	drawRoundedCorner(renderer, rect.X+radius, rect.Y+rect.H-radius, radius, color)
	// Bottom-right corner
	drawRoundedCorner(renderer, rect.X+rect.W-radius, rect.Y+rect.H-radius, radius, color)
}

func drawRoundedCorner(renderer *sdl.Renderer, centerX, centerY, radius int32, color sdl.Color) {
	gfx.FilledCircleColor(renderer, centerX, centerY, radius, color)

	gfx.AACircleColor(renderer, centerX, centerY, radius, color)

	// Key caps sit below 15px radius on every supported display; one extra
	// AA pass is enough to kill the jaggies there.
	if radius > 5 {
		gfx.AACircleColor(renderer, centerX, centerY, radius-1, color)
	}
}

// DrawRoundedRectOutline draws only the border of a rounded rect.
func DrawRoundedRectOutline(renderer *sdl.Renderer, rect *sdl.Rect, radius int32, color sdl.Color) {
	if radius <= 0 {
		renderer.SetDrawColor(color.R, color.G, color.B, color.A)
		renderer.DrawRect(rect)
		return
	}

	gfx.RoundedRectangleColor(
		renderer,
		rect.X,
		rect.Y,
		rect.X+rect.W-1,
		rect.Y+rect.H-1,
		radius,
		color,
	)
}
