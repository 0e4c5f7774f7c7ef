package iterbar

import (
	"io"
	"time"
)

// Config is a plain configuration value, for callers that resolve
// their settings once (from flags, environment or a file) and pass
// them down explicitly. The zero value means defaults.
type Config struct {
	Description string
	Unit        string
	// UnitScale is 1000 or 1024, zero disables scaling.
	UnitScale   int
	MinInterval time.Duration
	Disabled    bool
	// Output defaults to os.Stderr.
	Output      io.Writer
	DebugOutput io.Writer
	Width       int
	// Transient clears the line on close instead of leaving it.
	Transient bool
	Style     Style
	Color     bool
}

// Options converts c into bar options. Options passed after them
// take precedence.
func (c Config) Options() []BarOption {
	var opts []BarOption
	if c.Description != "" {
		opts = append(opts, WithDescription(c.Description))
	}
	if c.Unit != "" {
		opts = append(opts, WithUnit(c.Unit))
	}
	if c.UnitScale != 0 {
		opts = append(opts, WithUnitScale(c.UnitScale))
	}
	if c.MinInterval > 0 {
		opts = append(opts, WithMinInterval(c.MinInterval))
	}
	if c.Output != nil {
		opts = append(opts, WithOutput(c.Output))
	}
	if c.DebugOutput != nil {
		opts = append(opts, WithDebugOutput(c.DebugOutput))
	}
	if c.Width > 0 {
		opts = append(opts, WithWidth(c.Width))
	}
	if c.Style != StyleDefault {
		opts = append(opts, WithStyle(c.Style))
	}
	opts = append(opts,
		WithDisabled(c.Disabled),
		WithLeave(!c.Transient),
		BarOptOn(WithProgressColor(), func() bool { return c.Color }),
	)
	return opts
}

// Option returns c as a single BarOption.
func (c Config) Option() BarOption {
	return WithOptions(c.Options()...)
}
