package registry_test

import (
	"errors"
	"math/rand"
	"strconv"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/saverium/internal/effect"
	"github.com/san-kum/saverium/internal/registry"
)

type stub struct{ effect.Base }

func factory(name string, d time.Duration) effect.Factory {
	return func(env effect.Env) effect.Effect {
		return &stub{Base: effect.NewBase(name, d, env.Rand)}
	}
}

func entries(env effect.Env, names ...string) []registry.Entry {
	out := make([]registry.Entry, len(names))
	for i, n := range names {
		out[i] = registry.Describe(env, factory(n, 5*time.Second))
	}
	return out
}

var _ = Describe("Entry", func() {
	env := effect.NewEnv(100, 100, 1)

	It("describes a factory by its prototype", func() {
		e := registry.Describe(env, factory("Cosmic Dance", 8*time.Second))
		Expect(e.Name).To(Equal("Cosmic Dance"))
		Expect(e.Base).To(Equal("Cosmic Dance"))
		Expect(e.Duration).To(Equal(8 * time.Second))
		Expect(e.IsVariation()).To(BeFalse())
	})

	It("applies name and duration to fresh instances", func() {
		e := registry.Entry{Name: "Cosmic Dance Variation 2", Duration: 4200 * time.Millisecond, Factory: factory("Cosmic Dance", 8*time.Second)}
		a, b := e.New(env), e.New(env)
		Expect(a.Name()).To(Equal("Cosmic Dance Variation 2"))
		Expect(a.Duration()).To(Equal(4200 * time.Millisecond))
		Expect(a).NotTo(BeIdenticalTo(b))
	})
})

var _ = Describe("Variations", func() {
	env := effect.NewEnv(100, 100, 1)
	bases := entries(env, "A", "B", "C")

	It("creates rounds of variations in round-major order", func() {
		vars := registry.Variations(bases, 2, rand.New(rand.NewSource(1)), registry.DefaultMinDuration, registry.DefaultMaxDuration)
		Expect(vars).To(HaveLen(6))
		names := make([]string, len(vars))
		for i, v := range vars {
			names[i] = v.Name
		}
		Expect(names).To(Equal([]string{
			"A Variation 1", "B Variation 1", "C Variation 1",
			"A Variation 2", "B Variation 2", "C Variation 2",
		}))
	})

	It("keeps durations within bounds and names distinct from the base", func() {
		vars := registry.Variations(bases, 50, rand.New(rand.NewSource(9)), registry.DefaultMinDuration, registry.DefaultMaxDuration)
		for _, v := range vars {
			Expect(v.Duration).To(BeNumerically(">=", 3000*time.Millisecond))
			Expect(v.Duration).To(BeNumerically("<=", 10000*time.Millisecond))
			Expect(v.Name).NotTo(Equal(v.Base))
			Expect(strings.HasSuffix(v.Name, " Variation "+strconv.Itoa(v.Variation))).To(BeTrue())
			Expect(v.Duration % time.Millisecond).To(BeZero())
		}
	})

	It("returns nothing for zero rounds", func() {
		Expect(registry.Variations(bases, 0, rand.New(rand.NewSource(1)), time.Second, 2*time.Second)).To(BeEmpty())
	})
})

var _ = Describe("Merge", func() {
	env := effect.NewEnv(100, 100, 1)

	It("drops later duplicates and counts them", func() {
		a := entries(env, "A", "B", "C", "D")
		b := entries(env, "C", "D", "E")
		b[0].Duration = time.Minute

		merged, dropped := registry.Merge(a, b)
		Expect(merged).To(HaveLen(len(a) + len(b) - 2))
		Expect(dropped).To(Equal(2))

		r := registry.New(merged)
		c, err := r.Lookup("C")
		Expect(err).NotTo(HaveOccurred())
		Expect(c.Duration).To(Equal(5*time.Second), "first occurrence wins")
		Expect(r.Index("E")).To(Equal(4))
	})
})

var _ = Describe("Registry", func() {
	env := effect.NewEnv(100, 100, 1)
	r := registry.New(entries(env, "Matrix Rain", "Magnetic Dots", "Spiral Galaxy"))

	It("looks up by exact name", func() {
		e, err := r.Lookup("Spiral Galaxy")
		Expect(err).NotTo(HaveOccurred())
		Expect(e.Name).To(Equal("Spiral Galaxy"))
		Expect(r.Index("missing")).To(Equal(-1))
		_, err = r.Lookup("missing")
		Expect(errors.Is(err, registry.ErrNotFound)).To(BeTrue())
	})

	It("finds case-insensitive names and unique prefixes", func() {
		e, err := r.Find("spiral galaxy")
		Expect(err).NotTo(HaveOccurred())
		Expect(e.Name).To(Equal("Spiral Galaxy"))

		e, err = r.Find("matr")
		Expect(err).NotTo(HaveOccurred())
		Expect(e.Name).To(Equal("Matrix Rain"))

		_, err = r.Find("ma")
		Expect(err).To(MatchError(registry.ErrNotFound))
	})
})

var _ = Describe("Build", func() {
	cat := registry.Catalog{
		"one": func(env effect.Env) []registry.Entry { return entries(env, "A", "B") },
		"two": func(env effect.Env) []registry.Entry { return entries(env, "B", "C") },
	}

	It("merges sources with their variations and reports missing ones", func() {
		r, rep := registry.Build(cat, []string{"one", "nope", "two"}, registry.Options{
			Env:        effect.NewEnv(100, 100, 1),
			Variations: 2,
			Rand:       rand.New(rand.NewSource(1)),
		})
		Expect(rep.Sources).To(Equal([]string{"one", "two"}))
		Expect(rep.Missing).To(Equal([]string{"nope"}))
		Expect(rep.Bases).To(Equal(4))
		Expect(rep.Variations).To(Equal(8))
		// B and its two variations appear in both sources
		Expect(rep.Dropped).To(Equal(3))
		Expect(rep.Total).To(Equal(9))
		Expect(r.Len()).To(Equal(rep.Total))
		Expect(r.At(0).Name).To(Equal("A"))
		Expect(rep.String()).To(ContainSubstring("missing: nope"))
	})

	It("builds an empty registry when nothing resolves", func() {
		r, rep := registry.Build(cat, []string{"nope"}, registry.Options{Env: effect.NewEnv(100, 100, 1)})
		Expect(r.Len()).To(BeZero())
		Expect(rep.Total).To(BeZero())
	})
})
