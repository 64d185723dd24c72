package session

import (
	"strings"

	"enigma/internal/alphabet"
)

// Prepare upper-cases text. With lettersOnly, every byte that is not a
// letter is dropped; otherwise only surrounding whitespace is trimmed and
// the machine rejects anything else.
func Prepare(text string, lettersOnly bool) string {
	if !lettersOnly {
		return strings.ToUpper(strings.TrimSpace(text))
	}
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		if alphabet.IsLetter(text[i]) {
			b.WriteByte(alphabet.Upper(text[i]))
		}
	}
	return b.String()
}

// Group splits s into space-separated blocks of n letters. n <= 0 returns s.
func Group(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + len(s)/n)
	for i := 0; i < len(s); i += n {
		if i > 0 {
			b.WriteByte(' ')
		}
		end := i + n
		if end > len(s) {
			end = len(s)
		}
		b.WriteString(s[i:end])
	}
	return b.String()
}
