package preview

import (
	"encoding/json"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/san-kum/saverium/internal/canvas"
	"github.com/san-kum/saverium/internal/registry"
)

const captionHeight = 18

// Exporter writes captioned thumbnails and a manifest into a directory.
type Exporter struct {
	baseDir string
}

func NewExporter(baseDir string) *Exporter {
	return &Exporter{baseDir: baseDir}
}

func (x *Exporter) Init() error {
	return os.MkdirAll(x.baseDir, 0755)
}

type ManifestEntry struct {
	Name        string `json:"name"`
	File        string `json:"file"`
	DurationMS  int64  `json:"duration_ms"`
	Variation   int    `json:"variation,omitempty"`
	Placeholder bool   `json:"placeholder,omitempty"`
}

type Manifest struct {
	Generated time.Time       `json:"generated"`
	Width     int             `json:"width"`
	Height    int             `json:"height"`
	Entries   []ManifestEntry `json:"entries"`
}

// FileName turns a display name into a safe PNG file name.
func FileName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			if s := b.String(); len(s) > 0 && s[len(s)-1] != '_' {
				b.WriteByte('_')
			}
		}
	}
	return strings.TrimSuffix(b.String(), "_") + ".png"
}

// Save renders every entry through cache and writes it with a caption.
func (x *Exporter) Save(entries []registry.Entry, cache *Cache) (*Manifest, error) {
	if err := x.Init(); err != nil {
		return nil, err
	}
	failed := make(map[string]bool)
	w, h := cache.Size()
	man := &Manifest{Generated: time.Now(), Width: w, Height: h + captionHeight}

	cache.Warm(entries, nil)
	for _, name := range cache.Failures() {
		failed[name] = true
	}

	for _, e := range entries {
		file := FileName(e.Name)
		if err := writePNG(filepath.Join(x.baseDir, file), Captioned(cache.Get(e), e.Name)); err != nil {
			return nil, err
		}
		man.Entries = append(man.Entries, ManifestEntry{
			Name:        e.Name,
			File:        file,
			DurationMS:  e.Duration.Milliseconds(),
			Variation:   e.Variation,
			Placeholder: failed[e.Name],
		})
	}

	f, err := os.Create(filepath.Join(x.baseDir, "manifest.json"))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(man); err != nil {
		return nil, fmt.Errorf("write manifest: %w", err)
	}
	return man, nil
}

// Captioned returns a copy of img with name written in a strip below it.
func Captioned(img *image.RGBA, name string) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()+captionHeight))
	draw.Draw(out, out.Bounds(), image.NewUniform(canvas.Black.NRGBA()), image.Point{}, draw.Src)
	draw.Draw(out, image.Rect(0, 0, b.Dx(), b.Dy()), img, b.Min, draw.Src)

	face := basicfont.Face7x13
	d := &font.Drawer{Dst: out, Src: image.NewUniform(canvas.White.NRGBA()), Face: face}
	runes := []rune(name)
	for len(runes) > 1 && d.MeasureString(string(runes)).Ceil() > b.Dx()-4 {
		runes = runes[:len(runes)-1]
	}
	label := string(runes)
	if len(runes) < len([]rune(name)) && len(runes) > 3 {
		label = string(runes[:len(runes)-3]) + "..."
	}
	x := (b.Dx() - d.MeasureString(label).Ceil()) / 2
	d.Dot = fixed.P(max(x, 2), b.Dy()+captionHeight-5)
	d.DrawString(label)
	return out
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	return f.Close()
}
