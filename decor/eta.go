package decor

// Remaining decorator displays estimated time left as MM:SS or H:MM:SS,
// "?" while it can't be estimated.
//
//	`wcc` optional WC config
func Remaining(wcc ...WC) Decorator {
	return Any(FormatRemaining, wcc...)
}

// FormatRemaining is the DecorFunc behind Remaining decorator.
func FormatRemaining(s Statistics) string {
	if d, ok := s.Remaining(); ok {
		return FormatInterval(d)
	}
	return "?"
}
