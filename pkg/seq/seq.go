// Package seq provides generic selection helpers over slices.
package seq

import (
	"cmp"

	"github.com/arthur-debert/hexmark/pkg/errors"
)

// IsEmpty reports whether items has no elements. A nil slice is empty.
func IsEmpty[T any](items []T) bool {
	return len(items) == 0
}

// MaxBy returns the element with the largest key. Ties keep the earliest element.
func MaxBy[T any, K cmp.Ordered](items []T, selector func(T) K) (T, error) {
	return MaxByFunc(items, selector, cmp.Compare[K])
}

// MinBy returns the element with the smallest key. Ties keep the earliest element.
func MinBy[T any, K cmp.Ordered](items []T, selector func(T) K) (T, error) {
	return MinByFunc(items, selector, cmp.Compare[K])
}

// MaxByFunc is MaxBy with a custom key comparison
func MaxByFunc[T, K any](items []T, selector func(T) K, compare func(a, b K) int) (T, error) {
	return mostBy(items, selector, compare, true)
}

// MinByFunc is MinBy with a custom key comparison
func MinByFunc[T, K any](items []T, selector func(T) K, compare func(a, b K) int) (T, error) {
	return mostBy(items, selector, compare, false)
}

func mostBy[T, K any](items []T, selector func(T) K, compare func(a, b K) int, wantMax bool) (T, error) {
	var zero T
	if selector == nil {
		return zero, errors.New(errors.ErrNullArgument, "selector must not be nil")
	}
	if compare == nil {
		return zero, errors.New(errors.ErrNullArgument, "compare must not be nil")
	}
	if len(items) == 0 {
		return zero, errors.New(errors.ErrEmptySequence, "sequence contains no elements")
	}

	factor := 1
	if wantMax {
		factor = -1
	}

	most := items[0]
	mostKey := selector(most)
	for _, candidate := range items[1:] {
		key := selector(candidate)
		if compare(key, mostKey)*factor >= 0 {
			continue
		}
		most = candidate
		mostKey = key
	}
	return most, nil
}

// DistinctBy keeps the first element for each key, preserving order
func DistinctBy[T any, K comparable](items []T, selector func(T) K) []T {
	if len(items) == 0 {
		return nil
	}
	seen := make(map[K]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		key := selector(item)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
	}
	return out
}
