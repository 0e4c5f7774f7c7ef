package iterbar

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/vbauerster/iterbar/decor"
	"github.com/vbauerster/iterbar/internal"
)

const (
	iLbound = iota
	iFill
	iTip
	iPadding
	iRbound
	iLen
)

var blockChars = [...]string{" ", "▏", "▎", "▍", "▌", "▋", "▊", "▉", "█"}

type blockFiller struct {
	lbound, rbound string
}

// BlockStyle is the default filler: a bar of unicode blocks with
// eighth-of-a-cell resolution, bounded by "|". Renders nothing while
// total is unknown.
func BlockStyle() BarFiller {
	return blockFiller{lbound: "|", rbound: "|"}
}

func (f blockFiller) Fill(w io.Writer, stat decor.Statistics) error {
	if !stat.HasTotal() {
		return nil
	}
	width := stat.AvailableWidth - runewidth.StringWidth(f.lbound) - runewidth.StringWidth(f.rbound)
	if width < 1 {
		return nil
	}

	eighths := int(internal.Percentage(stat.Total, stat.Current, uint(width*8)))
	full, frac := eighths/8, eighths%8

	var b strings.Builder
	b.WriteString(f.lbound)
	b.WriteString(strings.Repeat(blockChars[8], full))
	if full < width {
		b.WriteString(blockChars[frac])
		b.WriteString(strings.Repeat(blockChars[0], width-full-1))
	}
	b.WriteString(f.rbound)

	_, err := io.WriteString(w, b.String())
	return err
}

type barFiller struct {
	format [iLen]string
	cell   int
}

// BarStyle provides an ascii bar filler. Style runes are, in order:
// left bound, fill, tip, padding, right bound. Missing runes keep their
// default from "[=>-]". Fill, tip and padding are expected to be of
// equal display width.
func BarStyle(style string) BarFiller {
	f := &barFiller{format: [iLen]string{"[", "=", ">", "-", "]"}}
	i := 0
	for _, r := range style {
		if i == iLen {
			break
		}
		f.format[i] = string(r)
		i++
	}
	f.cell = max(runewidth.StringWidth(f.format[iFill]), 1)
	return f
}

func (f *barFiller) Fill(w io.Writer, stat decor.Statistics) error {
	if !stat.HasTotal() {
		return nil
	}
	width := stat.AvailableWidth -
		runewidth.StringWidth(f.format[iLbound]) -
		runewidth.StringWidth(f.format[iRbound])
	cells := width / f.cell
	if cells < 1 {
		return nil
	}

	filled := int(internal.PercentageRound(stat.Total, stat.Current, uint(cells)))

	var b strings.Builder
	b.WriteString(f.format[iLbound])
	if filled > 0 && filled < cells {
		b.WriteString(strings.Repeat(f.format[iFill], filled-1))
		b.WriteString(f.format[iTip])
	} else {
		b.WriteString(strings.Repeat(f.format[iFill], filled))
	}
	b.WriteString(strings.Repeat(f.format[iPadding], cells-filled))
	b.WriteString(f.format[iRbound])

	_, err := io.WriteString(w, b.String())
	return err
}
