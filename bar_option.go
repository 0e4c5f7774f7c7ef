package iterbar

import (
	"io"
	"sync"
	"time"

	"github.com/vbauerster/iterbar/decor"
)

// BarOption is a function option which changes the default behavior of a bar.
type BarOption func(*bState)

// WithTotal sets bar's total. Total <= 0 means unknown.
func WithTotal(total int64) BarOption {
	return func(s *bState) {
		s.total = total
	}
}

// WithDescription sets the label shown in front of the bar.
func WithDescription(desc string) BarOption {
	return func(s *bState) {
		s.description = desc
	}
}

// WithUnit overrides default "it" unit label. Empty unit is ignored.
func WithUnit(unit string) BarOption {
	return func(s *bState) {
		if unit != "" {
			s.unit = unit
		}
	}
}

// WithUnitScale enables SI-like scaling of counts and rate. Divisor
// must be 1000 or 1024, anything else disables scaling.
func WithUnitScale(divisor int) BarOption {
	return func(s *bState) {
		switch divisor {
		case 1000, 1024:
			s.unitScale = divisor
		default:
			s.unitScale = 0
		}
	}
}

// WithMinInterval overrides default 100ms minimum interval between
// renders. Zero renders on every update.
func WithMinInterval(d time.Duration) BarOption {
	return func(s *bState) {
		if d >= 0 {
			s.minInterval = d
		}
	}
}

// WithDisabled turns display off. Disabled bar still counts, it just
// never writes anything.
func WithDisabled(disabled bool) BarOption {
	return func(s *bState) {
		s.disabled = disabled
	}
}

// WithOutput overrides default os.Stderr output. Setting it to nil
// will effectively disable display.
func WithOutput(w io.Writer) BarOption {
	if w == nil {
		w = io.Discard
	}
	return func(s *bState) {
		s.output = w
	}
}

// WithDebugOutput sets the writer internal failures, like output write
// errors or decorator panics, are reported to.
func WithDebugOutput(w io.Writer) BarOption {
	if w == nil {
		return nil
	}
	return func(s *bState) {
		s.debugOut = w
	}
}

// WithWidth sets line width. If output is a terminal, it's capped by
// terminal's width.
func WithWidth(width int) BarOption {
	return func(s *bState) {
		s.reqWidth = width
	}
}

// WithPosition sets the line the bar is rendered at, counting down from
// the cursor line. Normally set by Progress.
func WithPosition(pos int) BarOption {
	return func(s *bState) {
		if pos >= 0 {
			s.position = pos
		}
	}
}

// WithLeave controls whether the final line stays on screen after
// Close. Default is true.
func WithLeave(leave bool) BarOption {
	return func(s *bState) {
		s.leave = leave
	}
}

// WithLayout selects which parts of the default status line are shown.
func WithLayout(layout Layout) BarOption {
	return func(s *bState) {
		s.layout = layout
	}
}

// WithStyle is a shorthand for WithLayout(style.Layout()).
func WithStyle(style Style) BarOption {
	return WithLayout(style.Layout())
}

// PrependDecorators let you inject decorators to the bar's left side.
// Any decorator injected replaces the default layout.
func PrependDecorators(decorators ...decor.Decorator) BarOption {
	return func(s *bState) {
		s.customDecor = true
		for _, d := range decorators {
			if d != nil {
				s.pDecorators = append(s.pDecorators, d)
			}
		}
	}
}

// AppendDecorators let you inject decorators to the bar's right side.
// Any decorator injected replaces the default layout.
func AppendDecorators(decorators ...decor.Decorator) BarOption {
	return func(s *bState) {
		s.customDecor = true
		for _, d := range decorators {
			if d != nil {
				s.aDecorators = append(s.aDecorators, d)
			}
		}
	}
}

// WithFiller sets the part drawn between prepend and append
// decorators. Nil means no filler at all.
func WithFiller(filler BarFiller) BarOption {
	if filler == nil {
		filler = NopStyle()
	}
	return func(s *bState) {
		s.filler = filler
	}
}

// WithProgressColor paints the whole line red, yellow or green
// depending on how far the bar is. Has no effect with unknown total.
func WithProgressColor() BarOption {
	return func(s *bState) {
		s.colorize = true
	}
}

// WithMovingAverage overrides default rate average, which is
// decor.NewEwma(0).
func WithMovingAverage(average decor.MovingAverage) BarOption {
	if average == nil {
		return nil
	}
	return func(s *bState) {
		s.average = average
	}
}

// WithOptions combines several options into one.
func WithOptions(options ...BarOption) BarOption {
	return func(s *bState) {
		for _, opt := range options {
			if opt != nil {
				opt(s)
			}
		}
	}
}

// BarOptOn will invoke provided option only when predicate evaluates
// to true.
func BarOptOn(option BarOption, predicate func() bool) BarOption {
	if predicate != nil && predicate() {
		return option
	}
	return nil
}

func barOutputLock(l sync.Locker) BarOption {
	return func(s *bState) {
		s.outputLock = l
	}
}

func barOnClose(fn func()) BarOption {
	return func(s *bState) {
		s.onClose = fn
	}
}
