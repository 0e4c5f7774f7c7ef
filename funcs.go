package iterbar

import (
	"errors"
	"iter"
)

// ErrEmptyReduce is returned by Reduce for an empty slice.
var ErrEmptyReduce = errors.New("reduce of empty slice with no initial value")

// Map applies fn to every element of s, tracking progress with a bar
// described "Processing" unless options say otherwise.
func Map[T, R any](s []T, fn func(T) R, options ...BarOption) []R {
	res := make([]R, 0, len(s))
	for v := range Items(s, withDefaultDescription("Processing", options)...) {
		res = append(res, fn(v))
	}
	return res
}

// Filter returns elements of s satisfying predicate, tracking progress
// with a bar described "Filtering" unless options say otherwise.
func Filter[T any](s []T, predicate func(T) bool, options ...BarOption) []T {
	var res []T
	for v := range Items(s, withDefaultDescription("Filtering", options)...) {
		if predicate(v) {
			res = append(res, v)
		}
	}
	return res
}

// Reduce folds s with fn, using the first element as initial value.
// The bar, described "Reducing" by default, counts the remaining
// elements. Returns ErrEmptyReduce if s is empty.
func Reduce[T any](s []T, fn func(T, T) T, options ...BarOption) (T, error) {
	if len(s) == 0 {
		var zero T
		return zero, ErrEmptyReduce
	}
	return Fold(s[1:], s[0], fn, options...), nil
}

// Fold folds s with fn starting from initial, tracking progress with
// a bar described "Reducing" unless options say otherwise.
func Fold[T, A any](s []T, initial A, fn func(A, T) A, options ...BarOption) A {
	acc := initial
	for v := range Items(s, withDefaultDescription("Reducing", options)...) {
		acc = fn(acc, v)
	}
	return acc
}

// Enumerate yields elements of s paired with their index counted from
// start, tracking progress with a bar described "Processing" unless
// options say otherwise.
func Enumerate[T any](s []T, start int, options ...BarOption) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := start
		for v := range Items(s, withDefaultDescription("Processing", options)...) {
			if !yield(i, v) {
				return
			}
			i++
		}
	}
}

// Zip yields pairs of elements of a and b at the same index, stopping
// at the shorter one. Progress is tracked with a bar described
// "Zipping" unless options say otherwise.
func Zip[A, B any](a []A, b []B, options ...BarOption) iter.Seq2[A, B] {
	return func(yield func(A, B) bool) {
		for i := range Range(min(len(a), len(b)), withDefaultDescription("Zipping", options)...) {
			if !yield(a[i], b[i]) {
				return
			}
		}
	}
}

func withDefaultDescription(desc string, options []BarOption) []BarOption {
	return append([]BarOption{WithDescription(desc)}, options...)
}
