package alphabet

import "errors"

// Size is the number of contacts on every rotor and on the plugboard.
const Size = 26

// ErrInvalidCharacter is returned for anything outside A-Z / a-z.
var ErrInvalidCharacter = errors.New("character is not a letter A-Z")

// IsLetter reports whether c is an ASCII letter of either case.
func IsLetter(c byte) bool {
	return ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z')
}

// Upper folds c to upper case; non-letters are returned unchanged.
func Upper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

// Position returns 1 for A through 26 for Z, case-insensitively.
// Callers must have checked c with IsLetter.
func Position(c byte) int {
	return int(Upper(c)-'A') + 1
}

// Letter is the inverse of Position. p must already be within [1,26].
func Letter(p int) byte {
	return byte('A' + p - 1)
}

// ParsePosition is Position with validation.
func ParsePosition(c byte) (int, error) {
	if !IsLetter(c) {
		return 0, ErrInvalidCharacter
	}
	return Position(c), nil
}

// NormalizePosition folds p into [1,26]. Only a single wrap past either
// boundary is corrected.
func NormalizePosition(p int) int {
	switch {
	case p <= 0:
		return p + Size
	case p > Size:
		return p - Size
	}
	return p
}

// NormalizeIndex folds i into [0,25] with the same single-wrap rule.
func NormalizeIndex(i int) int {
	switch {
	case i < 0:
		return i + Size
	case i >= Size:
		return i - Size
	}
	return i
}
