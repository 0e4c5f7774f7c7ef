package decor

// Postfix decorator displays bar's postfix, as set by SetPostfix.
//
//	`wcc` optional WC config
func Postfix(wcc ...WC) Decorator {
	return Any(func(s Statistics) string {
		return s.Postfix
	}, wcc...)
}
