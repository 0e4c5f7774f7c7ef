package decor

// Metric is a named value shown in bar's postfix.
type Metric struct {
	Key   string
	Value any
}

// M is a shortcut for Metric{key, value}.
func M(key string, value any) Metric {
	return Metric{Key: key, Value: value}
}
