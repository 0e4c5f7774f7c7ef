package iterbar

import (
	"io"

	"github.com/mattn/go-runewidth"

	"github.com/vbauerster/iterbar/decor"
)

var defaultSpinnerStyle = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

type spinnerFiller struct {
	frames []string
	count  uint
}

// SpinnerStyle provides a filler advancing one frame per render, suited
// for unknown totals. If no frames are given the default braille
// spinner is used. A spinner keeps its own frame counter, so each bar
// needs its own instance.
func SpinnerStyle(frames ...string) BarFiller {
	if len(frames) == 0 {
		frames = defaultSpinnerStyle
	}
	return &spinnerFiller{frames: frames}
}

func (f *spinnerFiller) Fill(w io.Writer, stat decor.Statistics) error {
	frame := f.frames[f.count%uint(len(f.frames))]
	if runewidth.StringWidth(frame)+1 > stat.AvailableWidth {
		return nil
	}
	f.count++
	_, err := io.WriteString(w, frame+" ")
	return err
}
