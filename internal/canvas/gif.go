package canvas

import (
	"errors"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"
)

var ErrNoFrames = errors.New("canvas: no frames recorded")

// Recorder accumulates frames for an animated GIF. Frames past Limit are
// dropped.
type Recorder struct {
	Limit  int
	Delay  int // hundredths of a second
	Scale  int // downsample factor, 1 keeps full size
	frames []*image.Paletted
}

func NewRecorder() *Recorder {
	return &Recorder{Limit: 600, Delay: 2, Scale: 2}
}

func (r *Recorder) Len() int { return len(r.frames) }

func (r *Recorder) Reset() { r.frames = nil }

// Capture quantizes img to the web-safe palette and appends it.
func (r *Recorder) Capture(img *image.RGBA) {
	if r.Limit > 0 && len(r.frames) >= r.Limit {
		return
	}
	scale := r.Scale
	if scale < 1 {
		scale = 1
	}
	b := img.Bounds()
	out := image.NewPaletted(image.Rect(0, 0, b.Dx()/scale, b.Dy()/scale), palette.WebSafe)
	if scale == 1 {
		draw.Draw(out, out.Rect, img, b.Min, draw.Src)
	} else {
		for y := 0; y < out.Rect.Dy(); y++ {
			for x := 0; x < out.Rect.Dx(); x++ {
				out.Set(x, y, img.RGBAAt(b.Min.X+x*scale, b.Min.Y+y*scale))
			}
		}
	}
	r.frames = append(r.frames, out)
}

// Save encodes the recorded frames to path.
func (r *Recorder) Save(path string) error {
	if len(r.frames) == 0 {
		return ErrNoFrames
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range r.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, r.Delay)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create gif: %w", err)
	}
	defer f.Close()
	if err := gif.EncodeAll(f, &anim); err != nil {
		return fmt.Errorf("encode gif: %w", err)
	}
	return nil
}
