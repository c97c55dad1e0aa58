package render

import (
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

// Wind barb glyph geometry, in pixels.
const (
	barbStaffLen  = 18.0
	barbFeather   = 7.0 // length of a full barb
	barbSpacing   = 3.5 // distance between features along the staff
	barbCalmR     = 2.5 // radius of the calm circle
	barbLineWidth = 2.0
)

// barbComponents decomposes a speed in knots into barb features. Speeds are
// rounded to the nearest 5 knots; below 2.5 the station is calm.
func barbComponents(speedKt float64) (pennants, fulls, halves int, calm bool) {
	n := int(math.Round(speedKt / 5))
	if n == 0 {
		return 0, 0, 0, true
	}
	return n / 10, (n % 10) / 2, n % 2, false
}

// drawBarb renders one wind barb at pixel (x, y) for wind components u, v in
// knots (u eastward, v northward). The staff points into the wind; feathers
// sit on the clockwise side, the northern-hemisphere convention.
func drawBarb(dc *gg.Context, x, y, u, v float64, col color.Color) {
	speed := math.Hypot(u, v)
	dc.SetColor(col)
	dc.SetLineWidth(barbLineWidth)

	pennants, fulls, halves, calm := barbComponents(speed)
	if calm {
		dc.DrawCircle(x, y, barbCalmR)
		dc.Stroke()
		return
	}

	// Unit vector along the staff, from the station into the wind.
	// Pixel y grows downward, so the northward component flips sign.
	sx := -u / speed
	sy := v / speed
	// Perpendicular, on the feather side.
	fx := -sy
	fy := sx

	tipX := x + sx*barbStaffLen
	tipY := y + sy*barbStaffLen
	dc.DrawLine(x, y, tipX, tipY)
	dc.Stroke()

	// Features march from the tip back toward the station.
	pos := 0.0
	for i := 0; i < pennants; i++ {
		bx := tipX - sx*pos
		by := tipY - sy*pos
		nx := bx - sx*barbSpacing
		ny := by - sy*barbSpacing
		dc.MoveTo(bx, by)
		dc.LineTo(bx+fx*barbFeather, by+fy*barbFeather)
		dc.LineTo(nx, ny)
		dc.ClosePath()
		dc.Fill()
		pos += barbSpacing * 1.5
	}
	for i := 0; i < fulls; i++ {
		bx := tipX - sx*pos
		by := tipY - sy*pos
		dc.DrawLine(bx, by, bx+fx*barbFeather, by+fy*barbFeather)
		dc.Stroke()
		pos += barbSpacing
	}
	if halves > 0 {
		// A lone half barb sits one spacing in from the tip.
		if pennants == 0 && fulls == 0 {
			pos = barbSpacing
		}
		bx := tipX - sx*pos
		by := tipY - sy*pos
		dc.DrawLine(bx, by, bx+fx*barbFeather/2, by+fy*barbFeather/2)
		dc.Stroke()
	}
}
