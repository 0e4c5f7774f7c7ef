package decor

// Name decorator displays text that is set once and can't be changed
// during decorator's lifetime.
//
//	`str` string to display
//
//	`wcc` optional WC config
func Name(str string, wcc ...WC) Decorator {
	return Any(func(Statistics) string { return str }, wcc...)
}

// Description decorator displays bar's current description followed
// by ": ", or nothing if description is empty.
//
//	`wcc` optional WC config
func Description(wcc ...WC) Decorator {
	return Any(func(s Statistics) string {
		if s.Description == "" {
			return ""
		}
		return s.Description + ": "
	}, wcc...)
}
