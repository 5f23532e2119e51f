package preview

import (
	"hash/fnv"
	"image"
	"math/rand"
	"strings"

	"github.com/san-kum/saverium/internal/canvas"
)

type motif struct {
	keywords []string
	colors   []canvas.Color
	count    int
	radius   float64
}

// Checked in order; the last one matches everything.
var motifs = []motif{
	{[]string{"math", "function", "equation"}, []canvas.Color{canvas.Purple}, 10, 2},
	{[]string{"particle", "explosion"}, []canvas.Color{canvas.Red}, 15, 1},
	{[]string{"space", "galaxy", "star"}, []canvas.Color{canvas.Blue}, 8, 1},
	{[]string{"color", "rainbow"}, []canvas.Color{canvas.Red, canvas.Green, canvas.Blue, canvas.Purple}, 12, 2},
	{nil, []canvas.Color{canvas.Green}, 6, 3},
}

func motifFor(name string) motif {
	lower := strings.ToLower(name)
	for _, m := range motifs {
		if m.keywords == nil {
			return m
		}
		for _, k := range m.keywords {
			if strings.Contains(lower, k) {
				return m
			}
		}
	}
	return motifs[len(motifs)-1]
}

// Placeholder draws the stand-in thumbnail used when an effect fails to
// render. The dots are seeded from the name, so it is stable across runs.
func Placeholder(name string, w, h int) *image.RGBA {
	hash := fnv.New64a()
	hash.Write([]byte(name))
	rng := rand.New(rand.NewSource(int64(hash.Sum64())))

	ras := canvas.NewRaster(w, h, float64(w), float64(h))
	ras.Fill(canvas.Black)
	m := motifFor(name)
	for i := 0; i < m.count; i++ {
		x := 5 + rng.Intn(max(w-9, 1))
		y := 5 + rng.Intn(max(h-9, 1))
		ras.Circle(canvas.Pt(float64(x), float64(y)), m.radius, 0, m.colors[rng.Intn(len(m.colors))])
	}
	img := ras.Image()
	Border(img, canvas.Gray)
	return img
}
