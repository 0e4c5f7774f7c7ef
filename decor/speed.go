package decor

// Rate decorator displays smoothed processing rate, like "12.34it/s",
// "1.23s/it" or "?it/s".
//
//	`wcc` optional WC config
func Rate(wcc ...WC) Decorator {
	return Any(func(s Statistics) string {
		return FormatRate(s.Rate, s.Unit, s.UnitScale)
	}, wcc...)
}
