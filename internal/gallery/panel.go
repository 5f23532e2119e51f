package gallery

import (
	"strconv"
	"time"

	"github.com/san-kum/saverium/internal/config"
)

type Row struct {
	Label  string
	Values []string
}

var rows = []Row{
	{"Play Mode", []string{"Random", "Sequential"}},
	{"Duration (seconds)", []string{"3", "5", "8", "10", "15"}},
	{"Auto Advance", []string{"On", "Off"}},
	{"Show Preview", []string{"On", "Off"}},
}

// Panel edits Settings in place.
type Panel struct {
	settings *config.Settings
	selected int
}

func NewPanel(s *config.Settings) *Panel { return &Panel{settings: s} }

func (p *Panel) Rows() []Row                { return rows }
func (p *Panel) Selected() int              { return p.selected }
func (p *Panel) Up()                        { p.selected = (p.selected - 1 + len(rows)) % len(rows) }
func (p *Panel) Down()                      { p.selected = (p.selected + 1) % len(rows) }
func (p *Panel) Settings() *config.Settings { return p.settings }

// Change advances the selected row to its next value, wrapping. Left,
// right and enter all call it.
func (p *Panel) Change() {
	s := p.settings
	switch p.selected {
	case 0:
		if s.PlayMode == config.Random {
			s.PlayMode = config.Sequential
		} else {
			s.PlayMode = config.Random
		}
	case 1:
		// the next listed choice above the current value, so off-list
		// values from a config file land on their neighbour
		next := config.Durations[0]
		for _, d := range config.Durations {
			if d*1000 > s.DurationMS {
				next = d
				break
			}
		}
		s.SetDuration(time.Duration(next) * time.Second)
	case 2:
		s.AutoAdvance = !s.AutoAdvance
	case 3:
		s.ShowPreview = !s.ShowPreview
	}
}

// Value is the current display value of row i.
func (p *Panel) Value(i int) string {
	s := p.settings
	switch i {
	case 0:
		return s.PlayMode.Title()
	case 1:
		return strconv.FormatFloat(float64(s.DurationMS)/1000, 'f', -1, 64)
	case 2:
		return onOff(s.AutoAdvance)
	case 3:
		return onOff(s.ShowPreview)
	}
	return "Unknown"
}

func onOff(b bool) string {
	if b {
		return "On"
	}
	return "Off"
}
