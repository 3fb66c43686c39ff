package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"sync"

	"golang.org/x/image/vector"
)

// PlaceholderSize - сторона изображения-заглушки в пикселях.
const PlaceholderSize = 120

var (
	placeholderOnce sync.Once
	placeholderImg  *image.Gray
)

// Placeholder возвращает фиксированную заглушку "изображение недоступно":
// перечеркнутый круг на белом фоне. Результат нельзя изменять.
func Placeholder() image.Image {
	placeholderOnce.Do(func() {
		placeholderImg = drawPlaceholder(PlaceholderSize)
	})
	return placeholderImg
}

func drawPlaceholder(size int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	s := float32(size)
	c := s / 2
	outer := s * 0.45
	inner := s * 0.38

	r := vector.NewRasterizer(size, size)
	r.DrawOp = draw.Over

	// кольцо: внешний контур против часовой, внутренний по часовой
	circle(r, c, c, outer, false)
	circle(r, c, c, inner, true)

	// крест внутри кольца
	arm := inner * 0.55
	thick := s * 0.035
	bar(r, c-arm, c-arm, c+arm, c+arm, thick)
	bar(r, c-arm, c+arm, c+arm, c-arm, thick)

	r.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{})
	return img
}

func circle(r *vector.Rasterizer, cx, cy, radius float32, clockwise bool) {
	const segments = 64
	for i := 0; i <= segments; i++ {
		a := 2 * math.Pi * float64(i) / segments
		if clockwise {
			a = -a
		}
		x := cx + radius*float32(math.Cos(a))
		y := cy + radius*float32(math.Sin(a))
		if i == 0 {
			r.MoveTo(x, y)
		} else {
			r.LineTo(x, y)
		}
	}
	r.ClosePath()
}

// bar рисует отрезок толщиной thick как четырехугольник.
func bar(r *vector.Rasterizer, x0, y0, x1, y1, thick float32) {
	dx, dy := x1-x0, y1-y0
	length := float32(math.Hypot(float64(dx), float64(dy)))
	nx, ny := -dy/length*thick/2, dx/length*thick/2

	r.MoveTo(x0+nx, y0+ny)
	r.LineTo(x1+nx, y1+ny)
	r.LineTo(x1-nx, y1-ny)
	r.LineTo(x0-nx, y0-ny)
	r.ClosePath()
}
