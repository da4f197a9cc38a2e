// Package preview renders a flat PNG preview of a generated flake: the
// filled outline, the skeleton segments on top, and a caption with the
// parameter tuple.
package preview

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/flake"
)

// ErrEmptyImage is returned for non-positive image sizes.
var ErrEmptyImage = errors.New("preview: image size must be positive")

// Palette used by Render.
var (
	Background    = color.RGBA{R: 0x12, G: 0x1d, B: 0x33, A: 0xff}
	OutlineFill   = color.RGBA{R: 0xdc, G: 0xea, B: 0xff, A: 0xff}
	FallbackFill  = color.RGBA{R: 0xff, G: 0xc8, B: 0x8c, A: 0xff}
	SegmentStroke = color.RGBA{R: 0x2f, G: 0x6f, B: 0xd0, A: 0xff}
	CaptionColor  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

const (
	margin       = 0.06 // fraction of the image kept free on each side
	strokeWidth  = 1.2  // segment width in pixels
	captionInset = 6
	minFontSize  = 9.0
)

// captionFont is Go Regular, parsed once.
var captionFont = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

// Render draws res into a size x size image. A fallback outline is filled
// with a warmer color so it is easy to spot.
func Render(res *flake.Result, size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, ErrEmptyImage
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)
	if res == nil {
		return img, nil
	}

	v := newViewport(res, size)
	z := vector.NewRasterizer(size, size)

	if len(res.Outline) >= 3 {
		fill := OutlineFill
		if res.Fallback {
			fill = FallbackFill
		}
		outline := flake.ClosePath(res.Outline)
		z.MoveTo(v.project(outline[0]))
		for _, p := range outline[1:] {
			z.LineTo(v.project(p))
		}
		z.ClosePath()
		z.Draw(img, img.Bounds(), image.NewUniform(fill), image.Point{})
	}

	if len(res.Segments) > 0 {
		z.Reset(size, size)
		for _, s := range res.Segments {
			strokeSegment(z, v, s)
		}
		z.Draw(img, img.Bounds(), image.NewUniform(SegmentStroke), image.Point{})
	}

	if err := drawCaption(img, res); err != nil {
		return nil, err
	}

	flake.Logger().Debug("preview: rendered", "size", size,
		"segments", len(res.Segments), "outline", len(res.Outline))
	return img, nil
}

// strokeSegment adds the segment as a thin quad. Every quad has the same
// winding, so overlaps accumulate instead of cancelling.
func strokeSegment(z *vector.Rasterizer, v viewport, s flake.Segment) {
	ax, ay := v.project(s.Start)
	bx, by := v.project(s.End)
	dx, dy := bx-ax, by-ay
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l < 1e-3 {
		return
	}
	nx, ny := -dy/l*strokeWidth/2, dx/l*strokeWidth/2
	z.MoveTo(ax+nx, ay+ny)
	z.LineTo(bx+nx, by+ny)
	z.LineTo(bx-nx, by-ny)
	z.LineTo(ax-nx, ay-ny)
	z.ClosePath()
}

// drawCaption writes the parameter tuple along the bottom edge. The font
// size follows the image size.
func drawCaption(img *image.RGBA, res *flake.Result) error {
	f, err := captionFont()
	if err != nil {
		return fmt.Errorf("preview: parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    math.Max(float64(img.Bounds().Dy())/40, minFontSize),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("preview: font face: %w", err)
	}
	defer func() {
		_ = face.Close()
	}()

	p := res.Params
	text := fmt.Sprintf("%s  c%d  t%g  %.2fin", p.Seed, p.Complexity, p.Thickness, p.SizeInches)
	if res.Fallback {
		text += "  (fallback)"
	}
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(CaptionColor),
		Face: face,
		Dot:  fixed.P(captionInset, img.Bounds().Dy()-captionInset),
	}
	d.DrawString(text)
	return nil
}

// viewport maps local flake coordinates onto image pixels with Y pointing up.
type viewport struct {
	center flake.Point
	scale  float64
	half   float64
}

func newViewport(res *flake.Result, size int) viewport {
	bounds := flake.SegmentBounds(res.Segments)
	for _, p := range res.Outline {
		bounds = bounds.Extend(p)
	}
	v := viewport{scale: 1, half: float64(size) / 2}
	if bounds.Empty() {
		return v
	}
	v.center = bounds.Center()
	extent := math.Max(bounds.Width(), bounds.Height())
	if extent > 0 {
		v.scale = float64(size) * (1 - 2*margin) / extent
	}
	return v
}

func (v viewport) project(p flake.Point) (float32, float32) {
	x := v.half + (p.X-v.center.X)*v.scale
	y := v.half - (p.Y-v.center.Y)*v.scale
	return float32(x), float32(y)
}

// SavePNG encodes img as PNG at path.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("preview: encode: %w", err)
	}
	return f.Close()
}
