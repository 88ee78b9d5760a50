package main

import (
	"errors"
	"image"
	"image/color"
	"image/gif"
	"io"
	"math"
	"os"

	"fortio.org/log"
	"fortio.org/safecast"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/geofpwhite/asciiray/internal/tracer"
)

var glyphFace = basicfont.Face7x13

// gifPalette is white text on black.
var gifPalette = color.Palette{color.Black, color.White}

// rasterize draws the glyphs of f, one basicfont cell per glyph. Glyphs the
// font lacks, such as the figure space, stay blank.
func rasterize(f tracer.Frame) *image.Paletted {
	cw, ch := glyphFace.Advance, glyphFace.Height
	img := image.NewPaletted(image.Rect(0, 0, f.Cols*cw, f.Rows*ch), gifPalette)
	d := font.Drawer{Dst: img, Src: image.White, Face: glyphFace}
	for j := range f.Rows {
		for i := range f.Cols {
			g := f.At(i, j)
			if g == ' ' || g == '\u2007' {
				continue
			}
			d.Dot = fixed.P(i*cw, j*ch+glyphFace.Ascent)
			d.DrawString(string(g))
		}
	}
	return img
}

// gifDelay converts fps to the GIF delay unit of 1/100 s, at least 1.
func gifDelay(fps float64) (int, error) {
	delay, err := safecast.Convert[int](math.Round(100 / fps))
	if err != nil {
		return 0, err
	}
	return max(delay, 1), nil
}

func encodeGif(w io.Writer, frames []tracer.Frame, fps float64) error {
	if len(frames) == 0 {
		return errors.New("no frames to export")
	}
	delay, err := gifDelay(fps)
	if err != nil {
		return err
	}
	outGif := &gif.GIF{
		LoopCount: 0, // 0 means loop forever
	}
	for _, f := range frames {
		outGif.Image = append(outGif.Image, rasterize(f))
		outGif.Delay = append(outGif.Delay, delay)
	}
	log.LogVf("Encoding %d frames, delay %d", len(frames), delay)
	return gif.EncodeAll(w, outGif)
}

func exportToGif(path string, frames []tracer.Frame, fps float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encodeGif(f, frames, fps); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
