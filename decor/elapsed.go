package decor

// Elapsed decorator displays time elapsed since bar's start as MM:SS or
// H:MM:SS.
//
//	`wcc` optional WC config
func Elapsed(wcc ...WC) Decorator {
	return Any(func(s Statistics) string {
		return FormatInterval(s.Elapsed)
	}, wcc...)
}
