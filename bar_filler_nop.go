package iterbar

import (
	"io"

	"github.com/vbauerster/iterbar/decor"
)

// NopStyle provides BarFiller which does nothing.
func NopStyle() BarFiller {
	return BarFillerFunc(func(io.Writer, decor.Statistics) error {
		return nil
	})
}
