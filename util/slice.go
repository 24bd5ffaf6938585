package util

// Reverse reverses the slice in place
func Reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// Last returns the final element of s and whether s is non-empty
func Last[T any](s []T) (T, bool) {
	if len(s) == 0 {
		return *new(T), false
	}
	return s[len(s)-1], true
}
