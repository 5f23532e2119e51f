package registry

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/san-kum/saverium/internal/effect"
)

const (
	DefaultMinDuration = 3000 * time.Millisecond
	DefaultMaxDuration = 10000 * time.Millisecond
)

// Entry describes one playable item. Variations share the factory of their
// base and differ only in name and duration.
type Entry struct {
	Name      string
	Base      string
	Variation int // 0 for a base entry
	Duration  time.Duration
	Factory   effect.Factory
}

// Describe builds a prototype with the factory to read its name and
// default duration.
func Describe(env effect.Env, f effect.Factory) Entry {
	proto := f(env)
	return Entry{Name: proto.Name(), Base: proto.Name(), Duration: proto.Duration(), Factory: f}
}

// New builds a fresh instance carrying the entry's name and duration.
func (e Entry) New(env effect.Env) effect.Effect {
	fx := e.Factory(env)
	fx.SetName(e.Name)
	fx.SetDuration(e.Duration)
	return fx
}

func (e Entry) IsVariation() bool { return e.Variation > 0 }

func VariationName(base string, i int) string {
	return fmt.Sprintf("%s Variation %d", base, i)
}

// Variations derives rounds copies of every base, round-major: all bases
// for variation 1, then all bases for variation 2, and so on. Durations are
// drawn uniformly from [min, max] in whole milliseconds.
func Variations(bases []Entry, rounds int, rng *rand.Rand, min, max time.Duration) []Entry {
	if rounds <= 0 || len(bases) == 0 {
		return nil
	}
	if max < min {
		min, max = max, min
	}
	lo, hi := min.Milliseconds(), max.Milliseconds()
	out := make([]Entry, 0, rounds*len(bases))
	for i := 1; i <= rounds; i++ {
		for _, b := range bases {
			ms := lo + rng.Int63n(hi-lo+1)
			out = append(out, Entry{
				Name:      VariationName(b.Base, i),
				Base:      b.Base,
				Variation: i,
				Duration:  time.Duration(ms) * time.Millisecond,
				Factory:   b.Factory,
			})
		}
	}
	return out
}

// Merge concatenates lists keeping the first entry for each display name.
// It returns the merged list and the number of later duplicates dropped.
func Merge(lists ...[]Entry) ([]Entry, int) {
	seen := make(map[string]struct{})
	var out []Entry
	dropped := 0
	for _, l := range lists {
		for _, e := range l {
			if _, ok := seen[e.Name]; ok {
				dropped++
				continue
			}
			seen[e.Name] = struct{}{}
			out = append(out, e)
		}
	}
	return out, dropped
}
