// Package hamming counts mismatched positions between two strings.
package hamming

import (
	"errors"
	"fmt"
	"strings"
)

var ErrLengthMismatch = errors.New("strings must have the same length")

// Distance compares a and b byte by byte. Strings of different length are
// rejected with ErrLengthMismatch rather than compared over a prefix.
//
//	d, _ := Distance("GAGCCT", "CATCGT") // 3
func Distance(a, b string) (int, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d and %d", ErrLengthMismatch, len(a), len(b))
	}
	distance := 0
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			distance++
		}
	}
	return distance, nil
}

// PaddedDistance right-pads the shorter string with spaces and then counts,
// so every extra character of the longer string is a mismatch unless it is a space.
func PaddedDistance(a, b string) int {
	switch {
	case len(a) < len(b):
		a += strings.Repeat(" ", len(b)-len(a))
	case len(b) < len(a):
		b += strings.Repeat(" ", len(a)-len(b))
	}
	d, _ := Distance(a, b)
	return d
}
