package common

import (
	"math"
	"strings"
)

// HasAny returns true if s contains any of the substrings, ignoring case.
func HasAny(s string, subs ...string) bool {
	s = strings.ToLower(s)
	for _, sub := range subs {
		if strings.Contains(s, strings.ToLower(sub)) {
			return true
		}
	}
	return false
}

// RoundHalfUp rounds x to the nearest integer, with halves going towards +Inf
// (2.5 -> 3, -2.5 -> -2).
func RoundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
