package gallery

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/san-kum/saverium/internal/effect"
)

const (
	Title    = "Screen Saver Gallery"
	MaxLines = 2
)

func Subtitle(total int) string {
	return fmt.Sprintf("Click to preview • %d total", total)
}

// Wrap breaks name into at most lines lines of at most width cells,
// splitting on spaces. A single word wider than width is truncated.
func Wrap(name string, width, lines int) []string {
	var out []string
	cur := ""
	for _, w := range strings.Fields(name) {
		if runewidth.StringWidth(w) > width {
			w = runewidth.Truncate(w, width, "…")
		}
		test := w
		if cur != "" {
			test = cur + " " + w
		}
		if runewidth.StringWidth(test) <= width {
			cur = test
			continue
		}
		if cur != "" {
			out = append(out, cur)
		}
		cur = w
	}
	if cur != "" {
		out = append(out, cur)
	}
	if lines > 0 && len(out) > lines {
		out = out[:lines]
	}
	return out
}

var mathKeywords = []string{"function", "linear", "quadratic", "cubic", "trigonometric", "exponential", "logarithmic"}

var fallbackEquations = []struct{ keyword, eq string }{
	{"linear", "f(x) = mx + b"},
	{"quadratic", "f(x) = ax² + bx + c"},
	{"cubic", "f(x) = ax³ + bx² + cx + d"},
	{"trigonometric", "f(x) = A sin(Bx + C) + D"},
	{"exponential", "f(x) = a * b^x + c"},
	{"logarithmic", "f(x) = a * log_b(x) + c"},
}

// IsMath reports whether a tile for name should carry an equation.
func IsMath(name string) bool {
	lower := strings.ToLower(name)
	for _, k := range mathKeywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// EquationFor returns the live equation of fx if it has one, else a
// generic form picked by name. ok is false for non-math effects.
func EquationFor(fx effect.Effect) (string, bool) {
	if !IsMath(fx.Name()) {
		return "", false
	}
	if eq, ok := fx.(effect.Equation); ok {
		return eq.Equation(), true
	}
	lower := strings.ToLower(fx.Name())
	for _, f := range fallbackEquations {
		if strings.Contains(lower, f.keyword) {
			return f.eq, true
		}
	}
	return "", false
}

// Overlay is the text shown over a playing effect.
func Overlay(name string, mode string, d time.Duration) []string {
	return []string{
		"Current: " + name,
		"ESC: Return to menu",
		"SPACE: Next screen saver",
		"Mode: " + mode,
		fmt.Sprintf("Duration: %ds", int(d.Seconds())),
	}
}
