package main

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	imgfixed "golang.org/x/image/math/fixed"

	"github.com/gogpu/deepzoom"
	"github.com/gogpu/deepzoom/internal/iteration"
)

// render maps every pixel of sec to a colour. Escaped pixels follow a
// cyclic palette indexed by the smoothed count; the rest are black.
func render(sec *deepzoom.Section, target int32) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, sec.Width, sec.Height))
	for y := range sec.Height {
		// Imaginary part grows upwards.
		row := sec.Height - 1 - y
		for x := range sec.Width {
			img.SetRGBA(x, row, pixelColor(sec.At(x, y), target))
		}
	}
	return img
}

func pixelColor(p deepzoom.Pixel, target int32) color.RGBA {
	if !p.Escaped || p.Count > target {
		return color.RGBA{A: 0xff}
	}
	// The velocity carries the fractional part of the count.
	t := float64(p.Count) + float64(p.Velocity)/iteration.VelocityScale
	return palette(t)
}

// palette is a smooth cosine gradient with a period of 64 iterations.
func palette(t float64) color.RGBA {
	phase := 2 * math.Pi * t / 64
	channel := func(offset float64) uint8 {
		return uint8(math.Round(127.5 + 127.5*math.Cos(phase+offset)))
	}
	return color.RGBA{
		R: channel(0),
		G: channel(2 * math.Pi / 3),
		B: channel(4 * math.Pi / 3),
		A: 0xff,
	}
}

// drawCaption writes lines into the top-left corner on a dark band.
func drawCaption(img draw.Image, lines []string) {
	face := basicfont.Face7x13
	lineHeight := face.Metrics().Height.Ceil()

	width := 0
	for _, l := range lines {
		width = max(width, font.MeasureString(face, l).Ceil())
	}
	band := image.Rect(0, 0, width+8, lineHeight*len(lines)+6)
	draw.Draw(img, band, image.NewUniform(color.RGBA{A: 0xc0}), image.Point{}, draw.Over)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: face,
	}
	for i, l := range lines {
		d.Dot = imgfixed.P(4, 3+face.Metrics().Ascent.Ceil()+i*lineHeight)
		d.DrawString(l)
	}
}

func encodePNG(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	return enc.Encode(w, img)
}
