package journal

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/san-kum/saverium/internal/config"
	"github.com/san-kum/saverium/internal/playback"
	"github.com/san-kum/saverium/internal/registry"
)

func openTemp(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(filepath.Join(t.TempDir(), "sub", "plays.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { j.Close() })
	return j
}

func TestRecordAndRecent(t *testing.T) {
	j := openTemp(t)
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	names := []string{"Matrix Rain", "Cosmic Dance", "Matrix Rain"}
	for i, n := range names {
		p := Play{Effect: n, Reason: "auto", Mode: "random", StartedAt: base.Add(time.Duration(i) * time.Minute)}
		if err := j.Record(ctx, p); err != nil {
			t.Fatal(err)
		}
	}

	recent, err := j.Recent(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 plays, got %d", len(recent))
	}
	if recent[0].Effect != "Matrix Rain" || !recent[0].StartedAt.Equal(base.Add(2*time.Minute)) {
		t.Errorf("newest play = %+v", recent[0])
	}
	if recent[1].Effect != "Cosmic Dance" {
		t.Errorf("second play = %+v", recent[1])
	}
}

func TestCounts(t *testing.T) {
	j := openTemp(t)
	ctx := context.Background()
	now := time.Now()
	for _, n := range []string{"B", "A", "B", "C", "B", "A"} {
		if err := j.Record(ctx, Play{Effect: n, Reason: "skip", Mode: "sequential", StartedAt: now}); err != nil {
			t.Fatal(err)
		}
	}
	counts, err := j.Counts(ctx)
	if err != nil {
		t.Fatal(err)
	}
	want := []Count{{"B", 3}, {"A", 2}, {"C", 1}}
	if len(counts) != len(want) {
		t.Fatalf("counts = %+v", counts)
	}
	for i := range want {
		if counts[i] != want[i] {
			t.Errorf("counts[%d] = %+v, want %+v", i, counts[i], want[i])
		}
	}
}

func TestObserver(t *testing.T) {
	j := openTemp(t)
	at := time.Date(2024, 5, 2, 8, 30, 0, 0, time.UTC)
	j.Observer().Switched(playback.Switch{
		Entry:  registry.Entry{Name: "Spiral Galaxy"},
		Reason: playback.ReasonSelect,
		Mode:   config.Sequential,
		At:     at,
	})
	recent, err := j.Recent(context.Background(), 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 1 {
		t.Fatalf("expected 1 play, got %d", len(recent))
	}
	p := recent[0]
	if p.Effect != "Spiral Galaxy" || p.Reason != "select" || p.Mode != "sequential" || !p.StartedAt.Equal(at) {
		t.Errorf("recorded %+v", p)
	}
}

func TestReopenKeepsHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plays.db")
	j, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	j.Record(context.Background(), Play{Effect: "Energy Field", Reason: "auto", Mode: "random", StartedAt: time.Now()})
	j.Close()

	j, err = Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer j.Close()
	counts, _ := j.Counts(context.Background())
	if len(counts) != 1 || counts[0].Plays != 1 {
		t.Errorf("counts after reopen = %+v", counts)
	}
}
