package decor

// Counters decorator displays "current/total", or "current<unit>"
// while total is unknown. Values are scaled when bar has unit scale set.
//
//	`wcc` optional WC config
func Counters(wcc ...WC) Decorator {
	return Any(FormatCounters, wcc...)
}
