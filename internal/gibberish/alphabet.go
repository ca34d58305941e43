package gibberish

import "strings"

// Alphabet is the set of bytes a garbage token is sampled from.
type Alphabet string

const (
	Vowels     Alphabet = "aeiou"
	Consonants Alphabet = "bcdfghjklmnpqrstvwxyz"
)

// Everything covers printable bytes 33-63 (punctuation and digits) and
// 97-125 (lowercase letters and a few brackets).
var Everything = func() Alphabet {
	var b strings.Builder
	for c := byte(33); c < 64; c++ {
		b.WriteByte(c)
	}
	for c := byte(97); c < 126; c++ {
		b.WriteByte(c)
	}
	return Alphabet(b.String())
}()

// Contains reports whether every byte of s belongs to the alphabet.
func (a Alphabet) Contains(s string) bool {
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(string(a), s[i]) < 0 {
			return false
		}
	}
	return true
}
