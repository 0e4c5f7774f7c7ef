package iterbar

import (
	"github.com/fatih/color"

	"github.com/vbauerster/iterbar/decor"
	"github.com/vbauerster/iterbar/internal"
)

func progressColor(stat decor.Statistics) *color.Color {
	var c *color.Color
	switch f := internal.Fraction(stat.Total, stat.Current); {
	case f < 0.33:
		c = color.New(color.FgHiRed)
	case f < 0.66:
		c = color.New(color.FgHiYellow)
	default:
		c = color.New(color.FgHiGreen)
	}
	// output is often not a terminal fatih/color knows about
	c.EnableColor()
	return c
}

func colorize(line string, stat decor.Statistics) string {
	if !stat.HasTotal() || line == "" {
		return line
	}
	return progressColor(stat).Sprint(line)
}
