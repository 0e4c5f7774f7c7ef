package iterbar

import (
	"io"

	"github.com/vbauerster/iterbar/decor"
)

// BarFiller interface.
// Bar (without decorators) renders itself by calling BarFiller's Fill
// method. Fill must not write more than stat.AvailableWidth columns.
type BarFiller interface {
	Fill(w io.Writer, stat decor.Statistics) error
}

// BarFillerFunc is function type adapter to convert compatible function
// into BarFiller interface.
type BarFillerFunc func(w io.Writer, stat decor.Statistics) error

func (f BarFillerFunc) Fill(w io.Writer, stat decor.Statistics) error {
	return f(w, stat)
}
