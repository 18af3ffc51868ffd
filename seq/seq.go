// Package seq implements linear searches over slices of comparable elements.
package seq

// NotFound is returned by [Index] and [IndexNth] when no matching element exists.
const NotFound = -1

// Index returns the index of the first element of s equal to v,
// or [NotFound] if v is not present.
func Index[T comparable](s []T, v T) int {
	for i := range s {
		if s[i] == v {
			return i
		}
	}
	return NotFound
}

// IndexNth returns the index of the nth (1-based) element of s equal to v,
// or [NotFound] if s holds fewer than n such elements. n < 1 never matches.
func IndexNth[T comparable](s []T, v T, n int) int {
	if n < 1 {
		return NotFound
	}
	for i := range s {
		if s[i] != v {
			continue
		}
		n--
		if n == 0 {
			return i
		}
	}
	return NotFound
}

// Find is like [Index] but reports whether v was found instead of returning a sentinel.
func Find[T comparable](s []T, v T) (idx int, ok bool) {
	idx = Index(s, v)
	return idx, idx != NotFound
}

// FindNth is like [IndexNth] but reports whether the nth match was found.
func FindNth[T comparable](s []T, v T, n int) (idx int, ok bool) {
	idx = IndexNth(s, v, n)
	return idx, idx != NotFound
}
