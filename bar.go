package iterbar

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/vbauerster/iterbar/cwriter"
	"github.com/vbauerster/iterbar/decor"
	"github.com/vbauerster/iterbar/internal"
)

const (
	// default unit label
	defaultUnit = "it"
	// default minimum interval between renders
	defaultMinInterval = 100 * time.Millisecond
	// default width, if output isn't a terminal
	defaultWidth = 80
)

// timeNow is the clock of every bar.
var timeNow = time.Now

// Bar represents a progress bar. The zero value is not usable, use New.
type Bar struct {
	mu sync.Mutex
	s  *bState
}

type bState struct {
	total           int64
	current         int64
	description     string
	unit            string
	unitScale       int
	postfix         string
	minInterval     time.Duration
	reqWidth        int
	position        int
	disabled        bool
	leave           bool
	colorize        bool
	closed          bool
	aborted         bool
	customDecor     bool
	startTime       time.Time
	stopTime        time.Time
	lastRender      time.Time
	lastSample      time.Time
	lastSampleCount int64
	average         decor.MovingAverage
	filler          BarFiller
	layout          Layout
	pDecorators     []decor.Decorator
	aDecorators     []decor.Decorator
	output          io.Writer
	debugOut        io.Writer
	sink            *cwriter.Writer
	outputLock      sync.Locker
	onClose         func()
}

// New creates a bar in manual mode. Total <= 0 means unknown total,
// in which case percentage and remaining time are not displayed.
// Unless disabled, the initial state is rendered right away.
func New(total int64, options ...BarOption) *Bar {
	s := &bState{
		total:       total,
		unit:        defaultUnit,
		minInterval: defaultMinInterval,
		leave:       true,
		layout:      DefaultLayout,
		filler:      BlockStyle(),
		output:      os.Stderr,
		debugOut:    io.Discard,
	}

	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}

	if s.average == nil {
		s.average = decor.NewEwma(0)
	}
	if !s.customDecor {
		s.pDecorators, s.aDecorators = s.layout.decorators()
	}

	now := timeNow()
	s.startTime = now
	s.lastSample = now

	b := &Bar{s: s}
	if !s.disabled {
		s.sink = cwriter.New(s.output)
		b.mu.Lock()
		s.render(now)
		b.mu.Unlock()
	}
	return b
}

// Increment is a shorthand for b.IncrInt64(1).
func (b *Bar) Increment() {
	b.IncrInt64(1)
}

// IncrBy is a shorthand for b.IncrInt64(int64(n)).
func (b *Bar) IncrBy(n int) {
	b.IncrInt64(int64(n))
}

// IncrInt64 increments progress by amount of n. Non-positive n and
// calls on a closed bar are ignored. Renders if at least minimum
// interval passed since the last render.
func (b *Bar) IncrInt64(n int64) {
	if n <= 0 {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.s.closed {
		return
	}
	b.s.current += n
	b.s.maybeRender()
}

// SetCurrent sets progress' current to an arbitrary value. Values
// lower than current one are ignored, progress never goes back.
func (b *Bar) SetCurrent(current int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.s.closed || current <= b.s.current {
		return
	}
	b.s.current = current
	b.s.maybeRender()
}

// SetTotal sets total to an arbitrary value. Total <= 0 makes it
// unknown.
func (b *Bar) SetTotal(total int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.s.closed {
		return
	}
	b.s.total = total
	b.s.maybeRender()
}

// SetDescription changes the label shown in front of the bar and
// renders immediately.
func (b *Bar) SetDescription(desc string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.s.closed {
		return
	}
	b.s.description = desc
	if !b.s.disabled {
		b.s.render(timeNow())
	}
}

// SetPostfix sets metrics shown at the end of the line, formatted
// with decor.FormatMetrics.
func (b *Bar) SetPostfix(metrics ...decor.Metric) {
	b.SetPostfixString(decor.FormatMetrics(metrics...))
}

// SetPostfixString sets arbitrary text shown at the end of the line.
func (b *Bar) SetPostfixString(postfix string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.s.closed {
		return
	}
	b.s.postfix = postfix
	b.s.maybeRender()
}

// Refresh renders the bar now, regardless of minimum interval.
func (b *Bar) Refresh() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.s.closed || b.s.disabled {
		return
	}
	b.s.render(timeNow())
}

// Current returns bar's current value, in other words sum of all
// increments.
func (b *Bar) Current() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.s.current
}

// Total returns bar's total, zero or less if unknown.
func (b *Bar) Total() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.s.total
}

// Description returns bar's current description.
func (b *Bar) Description() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.s.description
}

// Elapsed returns time passed since bar's construction, frozen once
// the bar is closed.
func (b *Bar) Elapsed() time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.s.closed {
		return b.s.stopTime.Sub(b.s.startTime)
	}
	return timeNow().Sub(b.s.startTime)
}

// IsClosed reports whether Close or Abort has been called.
func (b *Bar) IsClosed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.s.closed
}

// Aborted reports whether the bar has been closed by Abort.
func (b *Bar) Aborted() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.s.aborted
}

// Close renders the final state and terminates the line: moves to
// the next line, or clears the line if leave is off. Calling Close
// more than once, or after Abort, is a no-op.
func (b *Bar) Close() {
	b.shutdown(false)
}

// Abort is like Close, but marks the bar as aborted, so decorators
// wrapped with decor.OnAbort can tell failure from completion. Has no
// effect on a closed bar.
func (b *Bar) Abort() {
	b.shutdown(true)
}

func (b *Bar) shutdown(abort bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	s := b.s
	if s.closed {
		return
	}
	now := timeNow()
	s.closed = true
	s.aborted = abort
	s.stopTime = now
	if !s.disabled {
		s.render(now)
		err := s.withOutputLock(func() error {
			return s.sink.Finalize(s.position, s.leave)
		})
		if err != nil {
			s.debugf("finalize: %v", err)
		}
	}
	if s.onClose != nil {
		s.onClose()
	}
}

func (s *bState) maybeRender() {
	if s.disabled {
		return
	}
	if now := timeNow(); now.Sub(s.lastRender) >= s.minInterval {
		s.render(now)
	}
}

func (s *bState) render(now time.Time) {
	s.lastRender = now
	s.sampleRate(now)
	line, width := s.draw(s.newStatistics(now))
	err := s.withOutputLock(func() error {
		return s.sink.WriteLine(line, width, s.position)
	})
	if err != nil {
		// sink is broken from now on, any further write is a no-op
		s.debugf("write: %v", err)
	}
}

func (s *bState) draw(stat decor.Statistics) (line string, width int) {
	defer func() {
		// recovering if user defined decorator or filler panics
		if p := recover(); p != nil {
			s.debugf("panic: %v", p)
			line = fmt.Sprintf("iterbar panic: %q", p)
			width = decor.StringWidth(line)
		}
	}()

	var buf strings.Builder
	var pw, aw int

	prepend := make([]string, len(s.pDecorators))
	for i, d := range s.pDecorators {
		str, w := d.Decor(stat)
		prepend[i] = str
		pw += w
	}

	appends := make([]string, len(s.aDecorators))
	for i, d := range s.aDecorators {
		str, w := d.Decor(stat)
		appends[i] = str
		aw += w
	}

	for _, str := range prepend {
		buf.WriteString(str)
	}

	var fw int
	if s.filler != nil {
		stat.AvailableWidth = stat.AvailableWidth - pw - aw
		if stat.AvailableWidth > 0 {
			var fill strings.Builder
			if err := s.filler.Fill(&fill, stat); err != nil {
				s.debugf("fill: %v", err)
			} else {
				fw = decor.StringWidth(fill.String())
				buf.WriteString(fill.String())
			}
		}
	}

	for _, str := range appends {
		buf.WriteString(str)
	}

	line = buf.String()
	if s.colorize {
		line = colorize(line, stat)
	}
	return line, pw + fw + aw
}

func (s *bState) newStatistics(now time.Time) decor.Statistics {
	elapsed := now.Sub(s.startTime)
	return decor.Statistics{
		Description:    s.description,
		Unit:           s.unit,
		UnitScale:      s.unitScale,
		Postfix:        s.postfix,
		Total:          s.total,
		Current:        s.current,
		Elapsed:        elapsed,
		Rate:           s.rate(elapsed),
		Position:       s.position,
		AvailableWidth: s.lineWidth(),
		Completed:      s.closed && !s.aborted,
		Aborted:        s.aborted,
	}
}

// sampleRate feeds the moving average with the rate observed since the
// previous sample. Intervals without progress are not sampled.
func (s *bState) sampleRate(now time.Time) {
	dn := s.current - s.lastSampleCount
	dt := now.Sub(s.lastSample)
	if dn <= 0 || dt <= 0 {
		return
	}
	s.average.Add(float64(dn) / dt.Seconds())
	s.lastSample = now
	s.lastSampleCount = s.current
}

func (s *bState) rate(elapsed time.Duration) float64 {
	if r := s.average.Value(); r > 0 {
		return r
	}
	if s.current > 0 && elapsed > 0 {
		return float64(s.current) / elapsed.Seconds()
	}
	return 0
}

func (s *bState) lineWidth() int {
	if tw, err := s.sink.GetWidth(); err == nil && tw > 0 {
		return internal.CheckRequestedWidth(s.reqWidth, tw)
	}
	if s.reqWidth > 0 {
		return s.reqWidth
	}
	return defaultWidth
}

func (s *bState) withOutputLock(fn func() error) error {
	if s.outputLock != nil {
		s.outputLock.Lock()
		defer s.outputLock.Unlock()
	}
	return fn()
}

func (s *bState) debugf(format string, args ...interface{}) {
	fmt.Fprintf(s.debugOut, "[iterbar] %s "+format+"\n", append([]interface{}{time.Now().Format(time.RFC3339)}, args...)...)
}
