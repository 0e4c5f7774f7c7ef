package iterbar

import (
	"strings"

	"github.com/vbauerster/iterbar/decor"
)

// Layout toggles parts of the default status line. Description,
// filler and postfix are always shown when set.
type Layout struct {
	Percentage bool
	Count      bool
	Rate       bool
	Elapsed    bool
	Remaining  bool
}

// DefaultLayout shows every part:
//
//	desc:  45%|████▌     | 45/100 [00:02<00:03, 20.10it/s, loss=0.1234]
var DefaultLayout = Layout{
	Percentage: true,
	Count:      true,
	Rate:       true,
	Elapsed:    true,
	Remaining:  true,
}

// Style is a named Layout preset.
type Style int

// Style presets.
const (
	StyleDefault Style = iota
	// StyleMinimal shows description, percentage and the bar only.
	StyleMinimal
	StyleDetailed
)

// Layout returns the preset's Layout.
func (st Style) Layout() Layout {
	switch st {
	case StyleMinimal:
		return Layout{Percentage: true}
	default:
		return DefaultLayout
	}
}

func (l Layout) decorators() (prepend, appends []decor.Decorator) {
	return []decor.Decorator{decor.Any(l.left)}, []decor.Decorator{decor.Any(l.right)}
}

func (l Layout) left(s decor.Statistics) string {
	var str string
	if s.Description != "" {
		str = s.Description + ": "
	}
	if l.Percentage {
		str += decor.FormatPercent(s)
	}
	return str
}

func (l Layout) right(s decor.Statistics) string {
	var b strings.Builder
	if l.Count {
		if s.HasTotal() {
			b.WriteByte(' ')
		}
		b.WriteString(decor.FormatCounters(s))
	}

	parts := make([]string, 0, 3)
	switch known := s.HasTotal(); {
	case l.Elapsed && l.Remaining && known:
		parts = append(parts, decor.FormatInterval(s.Elapsed)+"<"+decor.FormatRemaining(s))
	case l.Elapsed:
		parts = append(parts, decor.FormatInterval(s.Elapsed))
	case l.Remaining && known:
		parts = append(parts, decor.FormatRemaining(s))
	}
	if l.Rate {
		parts = append(parts, decor.FormatRate(s.Rate, s.Unit, s.UnitScale))
	}
	if s.Postfix != "" {
		parts = append(parts, s.Postfix)
	}

	if len(parts) != 0 {
		if b.Len() != 0 || s.HasTotal() {
			b.WriteByte(' ')
		}
		b.WriteByte('[')
		b.WriteString(strings.Join(parts, ", "))
		b.WriteByte(']')
	}
	return b.String()
}
