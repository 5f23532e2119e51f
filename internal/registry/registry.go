package registry

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/san-kum/saverium/internal/effect"
)

var ErrNotFound = errors.New("registry: effect not found")

// Registry is the ordered list of playable entries. Indices are stable for
// the lifetime of the registry.
type Registry struct {
	entries []Entry
	index   map[string]int
}

// New wraps entries, keeping the first entry for any repeated name.
func New(entries []Entry) *Registry {
	merged, _ := Merge(entries)
	r := &Registry{entries: merged, index: make(map[string]int, len(merged))}
	for i, e := range merged {
		r.index[e.Name] = i
	}
	return r
}

func (r *Registry) Len() int         { return len(r.entries) }
func (r *Registry) At(i int) Entry   { return r.entries[i] }
func (r *Registry) Entries() []Entry { return r.entries }

// Index returns the position of name, or -1.
func (r *Registry) Index(name string) int {
	if i, ok := r.index[name]; ok {
		return i
	}
	return -1
}

func (r *Registry) Lookup(name string) (Entry, error) {
	i, ok := r.index[name]
	if !ok {
		return Entry{}, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	return r.entries[i], nil
}

// Find resolves name exactly, then case-insensitively, then as a unique
// case-insensitive prefix.
func (r *Registry) Find(name string) (Entry, error) {
	if e, err := r.Lookup(name); err == nil {
		return e, nil
	}
	lower := strings.ToLower(name)
	var prefix []Entry
	for _, e := range r.entries {
		n := strings.ToLower(e.Name)
		if n == lower {
			return e, nil
		}
		if strings.HasPrefix(n, lower) {
			prefix = append(prefix, e)
		}
	}
	if len(prefix) == 1 {
		return prefix[0], nil
	}
	return Entry{}, fmt.Errorf("%q: %w", name, ErrNotFound)
}

func (r *Registry) Names() []string {
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.Name
	}
	return names
}

// Catalog maps a source name to the base entries it contributes.
type Catalog map[string]func(env effect.Env) []Entry

type Options struct {
	Env         effect.Env
	Variations  int
	MinDuration time.Duration
	MaxDuration time.Duration
	Rand        *rand.Rand
}

type Report struct {
	Sources    []string
	Missing    []string
	Bases      int
	Variations int
	Dropped    int
	Total      int
}

func (r Report) String() string {
	s := fmt.Sprintf("%d effects from %d sources (%d bases, %d variations, %d duplicates dropped)",
		r.Total, len(r.Sources), r.Bases, r.Variations, r.Dropped)
	if len(r.Missing) > 0 {
		s += fmt.Sprintf("; missing: %s", strings.Join(r.Missing, ", "))
	}
	return s
}

// Build resolves the named sources, derives variations for each, and
// merges everything into one registry. Unknown sources are noted and
// skipped.
func Build(cat Catalog, names []string, opts Options) (*Registry, Report) {
	if opts.MinDuration <= 0 {
		opts.MinDuration = DefaultMinDuration
	}
	if opts.MaxDuration <= 0 {
		opts.MaxDuration = DefaultMaxDuration
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	var rep Report
	var lists [][]Entry
	for _, name := range names {
		src, ok := cat[name]
		if !ok {
			log.Printf("registry: source %q not available, skipping", name)
			rep.Missing = append(rep.Missing, name)
			continue
		}
		bases := src(opts.Env)
		vars := Variations(bases, opts.Variations, opts.Rand, opts.MinDuration, opts.MaxDuration)
		rep.Sources = append(rep.Sources, name)
		rep.Bases += len(bases)
		rep.Variations += len(vars)
		lists = append(lists, append(bases, vars...))
	}

	merged, dropped := Merge(lists...)
	if dropped > 0 {
		log.Printf("registry: dropped %d duplicate entries", dropped)
	}
	rep.Dropped = dropped
	rep.Total = len(merged)
	return New(merged), rep
}
