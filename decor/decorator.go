package decor

import (
	"strings"
	"time"

	"github.com/acarl005/stripansi"
	"github.com/mattn/go-runewidth"
)

const (
	// DindentRight sets indentation from right to left.
	//
	//	|foo   |b     | DindentRight is set
	//	|   foo|     b| DindentRight is not set
	DindentRight = 1 << iota

	// DextraSpace bit adds extra indentation space.
	DextraSpace

	// DSpaceR is shortcut for DextraSpace|DindentRight
	DSpaceR = DextraSpace | DindentRight
)

// Statistics contains a snapshot of bar's state, passed to every
// Decorator and BarFiller on each render.
type Statistics struct {
	Description    string
	Unit           string
	UnitScale      int
	Postfix        string
	Total          int64
	Current        int64
	Elapsed        time.Duration
	Rate           float64
	Position       int
	AvailableWidth int
	Completed      bool
	Aborted        bool
}

// HasTotal reports whether total is known.
func (s Statistics) HasTotal() bool {
	return s.Total > 0
}

// Remaining estimates time left to reach total at current rate.
// The second value is false if total or rate is unknown.
func (s Statistics) Remaining() (time.Duration, bool) {
	if s.Total <= 0 || s.Rate <= 0 {
		return 0, false
	}
	left := s.Total - s.Current
	if left <= 0 {
		return 0, true
	}
	return time.Duration(float64(left) / s.Rate * float64(time.Second)), true
}

// Decorator interface.
// Most of the time there is no need to implement this interface
// manually, as decor package already provides a wide range of decorators
// which implement this interface. If however built-in decorators don't
// meet your needs, you're free to implement your own one by implementing
// this particular interface. The easy way to go is to convert a
// `DecorFunc` into a `Decorator` interface by using provided
// `func Any(DecorFunc, ...WC) Decorator`.
type Decorator interface {
	// Decor returns text and its display width.
	Decor(Statistics) (str string, viewWidth int)
}

// Wrapper interface.
// If you're implementing custom Decorator by wrapping a built-in one,
// it is necessary to implement this interface to retain functionality
// of built-in Decorator.
type Wrapper interface {
	Unwrap() Decorator
}

// DecorFunc func type.
// To be used with `func Any(DecorFunc, ...WC) Decorator`.
type DecorFunc func(Statistics) string

// Any decorator.
// Converts DecorFunc into Decorator.
//
//	`fn` DecorFunc callback
//	`wcc` optional WC config
func Any(fn DecorFunc, wcc ...WC) Decorator {
	return anyDecorator{initWC(wcc...), fn}
}

type anyDecorator struct {
	WC
	fn DecorFunc
}

func (d anyDecorator) Decor(s Statistics) (string, int) {
	return d.Format(d.fn(s))
}

// WC is a struct with two public fields W and C, both of int type.
// W represents width and C represents bit set of width related config.
// A decorator should embed WC, to enable width synchronization.
type WC struct {
	W int
	C int
}

// Format pads str according to WC config and returns it together
// with its display width. Escape sequences don't count towards width.
func (wc WC) Format(str string) (string, int) {
	width := StringWidth(str)
	if (wc.C & DextraSpace) != 0 {
		if (wc.C & DindentRight) != 0 {
			str += " "
		} else {
			str = " " + str
		}
		width++
	}
	if pad := wc.W - width; pad > 0 {
		if (wc.C & DindentRight) != 0 {
			str += strings.Repeat(" ", pad)
		} else {
			str = strings.Repeat(" ", pad) + str
		}
		width = wc.W
	}
	return str, width
}

// StringWidth returns display width of str, ignoring ANSI escape
// sequences and accounting for east asian wide runes.
func StringWidth(str string) int {
	return runewidth.StringWidth(stripansi.Strip(str))
}

func initWC(wcc ...WC) WC {
	var wc WC
	for _, widthConf := range wcc {
		wc = widthConf
	}
	return wc
}
