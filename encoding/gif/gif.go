// Package gif renders grid search progress as an animated GIF, one frame per
// scored combination.
package gif

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
	"math"

	"github.com/golang/freetype/truetype"
	"github.com/gorgonia/golem"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"
)

var regular *truetype.Font

const (
	dpi             = 144.0
	fontsize        = 12.0
	lineheight      = 1.2
	dummyLongString = `Combination 10000/10000 scored -0.123456789`
)

func init() {
	var err error
	if regular, err = truetype.Parse(gomono.TTF); err != nil {
		panic(err)
	}
}

var globPalette = color.Palette{
	color.Gray{0},
	color.Gray{253},
}

// Encoder renders progress frames according to the golem.ProgressEncoder
// interface.
type Encoder struct {
	H, W int
	font.Drawer

	out *gif.GIF
	io.Writer
	face font.Face

	maxH, maxW  int
	padH, padW  int
	initialized bool
}

// NewEncoder with a maximum frame height and width. The writer receives the
// GIF on Flush.
func NewEncoder(h, w int, out io.Writer) *Encoder {
	return &Encoder{
		H:    -1,
		W:    -1,
		maxH: h,
		maxW: w,
		padH: 10,
		padW: 10,

		Drawer: font.Drawer{
			Src: image.Black,
		},
		Writer: out,
		out:    &gif.GIF{LoopCount: -1},
	}
}

// Encode renders one scored combination as a frame.
func (enc *Encoder) Encode(p golem.Progress) error {
	if !enc.initialized {
		// lazy init of specifications
		enc.face = truetype.NewFace(regular, &truetype.Options{
			Size:    fontsize,
			DPI:     dpi,
			Hinting: font.HintingFull,
		})
		enc.Drawer.Src = image.Black
		enc.Drawer.Face = enc.face

		maxW := font.MeasureString(enc.Face, dummyLongString).Ceil()
		dy := int(math.Ceil(fontsize * lineheight * dpi / 72))
		w := maxW + 2*enc.padW
		h := 5*dy + 2*enc.padH // 4 text lines plus headroom

		w = minInt(w, enc.maxW)
		h = minInt(h, enc.maxH)
		if w == enc.maxW {
			enc.padW = 0
		}
		if h == enc.maxH {
			enc.padH = 0
		}

		enc.H = h
		enc.W = w
		enc.initialized = true
	}

	bg := image.White
	im := image.NewPaletted(image.Rect(0, 0, enc.W, enc.H), globPalette)
	draw.Draw(im, im.Bounds(), bg, image.ZP, draw.Src)
	dy := int(math.Ceil(fontsize * lineheight * dpi / 72))
	enc.Dst = im

	y := enc.padH + dy
	lines := []string{
		fmt.Sprintf("Combination %d/%d scored %.6f", p.Index+1, p.Total, p.Score),
		fmt.Sprintf("Params: %v", p.Params),
		fmt.Sprintf("Best so far: %.6f", p.BestScore),
		fmt.Sprintf("Best params: %v", p.BestParams),
	}
	for _, s := range lines {
		enc.Dot = fixed.P(enc.padW, y)
		enc.DrawString(s)
		y += dy
	}

	var delay int
	if p.Index == p.Total-1 {
		// linger on the final standings
		delay = 300
	}
	enc.out.Image = append(enc.out.Image, im)
	enc.out.Delay = append(enc.out.Delay, delay)
	return nil
}

// Flush writes the gif into the writer.
func (enc *Encoder) Flush() error { return gif.EncodeAll(enc.Writer, enc.out) }

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
