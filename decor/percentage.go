package decor

import (
	"strconv"

	"github.com/vbauerster/iterbar/internal"
)

// Percentage returns percentage decorator, three columns wide: "  5%",
// " 45%", "100%". Values above total are not clamped, so overshoot is
// visible. Renders nothing while total is unknown.
//
//	`wcc` optional WC config
func Percentage(wcc ...WC) Decorator {
	return Any(FormatPercent, wcc...)
}

// FormatPercent is the DecorFunc behind Percentage decorator.
func FormatPercent(s Statistics) string {
	if !s.HasTotal() {
		return ""
	}
	p := strconv.FormatFloat(internal.Fraction(s.Total, s.Current)*100, 'f', 0, 64)
	for len(p) < 3 {
		p = " " + p
	}
	return p + "%"
}
