package decor

import (
	"sort"

	"github.com/VividCortex/ewma"
)

var (
	_ MovingAverage = (*median)(nil)
	_ MovingAverage = medianEwma{}
)

// MovingAverage is the interface that computes a moving average over
// a time-series stream of numbers. The average may be over a window or
// exponentially decaying. Bars use it to smooth their rate.
type MovingAverage = ewma.MovingAverage

// NewEwma returns exponentially weighted MovingAverage. Zero age
// yields ewma.SimpleEWMA which is usable from the first sample, any
// other age yields ewma.VariableEWMA which reports zero during its
// warm-up.
func NewEwma(age float64) MovingAverage {
	if age == 0 {
		return ewma.NewMovingAverage()
	}
	return ewma.NewMovingAverage(age)
}

type median struct {
	window [3]float64
	dst    []float64
}

func (s *median) Add(v float64) {
	s.window[0], s.window[1] = s.window[1], s.window[2]
	s.window[2] = v
}

func (s *median) Value() float64 {
	copy(s.dst, s.window[:])
	sort.Float64s(s.dst)
	return s.dst[1]
}

func (s *median) Set(value float64) {
	for i := range s.window {
		s.window[i] = value
	}
}

// NewMedian is fixed last 3 samples median MovingAverage.
func NewMedian() MovingAverage {
	return &median{
		dst: make([]float64, 3),
	}
}

type medianEwma struct {
	MovingAverage
	median MovingAverage
}

func (s medianEwma) Add(v float64) {
	s.median.Add(v)
	s.MovingAverage.Add(s.median.Value())
}

// NewMedianEwma is ewma based MovingAverage, which gets its values
// from median MovingAverage. Useful to smooth out single spikes, such
// as a stalled network read.
func NewMedianEwma(age ...float64) MovingAverage {
	return medianEwma{
		MovingAverage: ewma.NewMovingAverage(age...),
		median:        NewMedian(),
	}
}
