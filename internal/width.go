package internal

// CheckRequestedWidth checks that requested width doesn't overflow
// available width.
func CheckRequestedWidth(requested, available int) int {
	if requested < 1 || requested > available {
		return available
	}
	return requested
}

// Pad returns n spaces, or empty string for n < 1.
func Pad(n int) string {
	if n < 1 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
