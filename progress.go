package iterbar

import (
	"container/heap"
	"sync"
)

// Progress is a container of bars sharing one output. It assigns each
// bar a display position and serializes their writes. The zero value
// is not usable, use NewProgress.
type Progress struct {
	outputMu sync.Mutex
	mu       sync.Mutex
	free     positionHeap
	next     int
	wg       sync.WaitGroup
	options  []BarOption
}

// NewProgress creates a container. Provided options are applied to
// every bar added, before the bar's own options.
func NewProgress(options ...BarOption) *Progress {
	return &Progress{options: options}
}

// AddBar creates a bar at the lowest free position. Position is
// released once the bar is closed, so a transient inner bar of a
// nested loop keeps reusing the same line.
func (p *Progress) AddBar(total int64, options ...BarOption) *Bar {
	pos := p.acquire()
	p.wg.Add(1)

	opts := make([]BarOption, 0, len(p.options)+len(options)+3)
	opts = append(opts, p.options...)
	opts = append(opts, options...)
	opts = append(opts,
		WithPosition(pos),
		barOutputLock(&p.outputMu),
		barOnClose(func() {
			p.release(pos)
			p.wg.Done()
		}),
	)
	return New(total, opts...)
}

// Wait blocks until every added bar is closed.
func (p *Progress) Wait() {
	p.wg.Wait()
}

// BarCount returns number of bars not yet closed.
func (p *Progress) BarCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.next - p.free.Len()
}

func (p *Progress) acquire() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.free.Len() != 0 {
		return heap.Pop(&p.free).(int)
	}
	pos := p.next
	p.next++
	return pos
}

func (p *Progress) release(pos int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	heap.Push(&p.free, pos)
}
