package iterbar

import "iter"

// Wrap returns a sequence yielding the same values as seq, in the same
// order, while a bar counts them. A new bar is created every time the
// returned sequence is ranged over. Pass WithTotal to enable
// percentage and remaining time.
//
// The count is incremented once the loop body returns for a value.
// Exhausting seq or breaking out of the loop closes the bar; a panic,
// in seq or in the loop body, aborts it and propagates unchanged.
func Wrap[T any](seq iter.Seq[T], options ...BarOption) iter.Seq[T] {
	return func(yield func(T) bool) {
		observe(New(0, options...), seq, yield)
	}
}

// WrapErr is like Wrap for sequences of value and error pairs. Pairs
// pass through unchanged, those carrying a non-nil error are not
// counted. If any error has been seen the bar is aborted, instead of
// closed, at the end.
func WrapErr[T any](seq iter.Seq2[T, error], options ...BarOption) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		observeErr(New(0, options...), seq, yield)
	}
}

// Observe is like Wrap, but with a caller owned bar, so the loop body
// can update description or postfix. The bar is closed when the
// iteration ends, hence the returned sequence is single use.
func Observe[T any](b *Bar, seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		observe(b, seq, yield)
	}
}

// ObserveErr is like WrapErr with a caller owned bar.
func ObserveErr[T any](b *Bar, seq iter.Seq2[T, error]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		observeErr(b, seq, yield)
	}
}

// Range yields 0 through n-1 with a bar of total n.
func Range(n int, options ...BarOption) iter.Seq[int] {
	seq := func(yield func(int) bool) {
		for i := 0; i < n; i++ {
			if !yield(i) {
				return
			}
		}
	}
	return Wrap(seq, prependTotal(int64(n), options)...)
}

// Items yields elements of s with a bar of total len(s).
func Items[T any](s []T, options ...BarOption) iter.Seq[T] {
	seq := func(yield func(T) bool) {
		for _, v := range s {
			if !yield(v) {
				return
			}
		}
	}
	return Wrap(seq, prependTotal(int64(len(s)), options)...)
}

// FromChan yields values received from ch until it's closed. Useful to
// track a stream of completions from concurrent workers: only the
// consuming goroutine touches the bar.
func FromChan[T any](ch <-chan T, options ...BarOption) iter.Seq[T] {
	seq := func(yield func(T) bool) {
		for v := range ch {
			if !yield(v) {
				return
			}
		}
	}
	return Wrap(seq, options...)
}

func observe[T any](b *Bar, seq iter.Seq[T], yield func(T) bool) {
	var normal bool
	defer func() {
		if normal {
			b.Close()
		} else {
			b.Abort()
		}
	}()
	for v := range seq {
		if !yield(v) {
			normal = true
			return
		}
		b.Increment()
	}
	normal = true
}

func observeErr[T any](b *Bar, seq iter.Seq2[T, error], yield func(T, error) bool) {
	var normal, failed bool
	defer func() {
		if normal && !failed {
			b.Close()
		} else {
			b.Abort()
		}
	}()
	for v, err := range seq {
		if err != nil {
			failed = true
		}
		if !yield(v, err) {
			normal = true
			return
		}
		if err == nil {
			b.Increment()
		}
	}
	normal = true
}

// prependTotal puts total first, so caller's options can override it.
func prependTotal(total int64, options []BarOption) []BarOption {
	return append([]BarOption{WithTotal(total)}, options...)
}
