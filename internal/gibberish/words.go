package gibberish

import (
	"iter"
	"math/rand/v2"
)

// WordSource produces a finite, lazy sequence of pseudo-words. Sequences are
// not required to be restartable.
type WordSource interface {
	Words(n int) iter.Seq[string]
}

var (
	initialConsonants = []string{
		"b", "c", "d", "f", "g", "h", "j", "k", "l", "m", "n", "p", "r", "s", "t", "v", "w", "z",
		"bl", "br", "ch", "cl", "cr", "dr", "fl", "fr", "gl", "gr", "pl", "pr", "sc", "sh", "sk",
		"sl", "sm", "sn", "sp", "st", "sw", "th", "tr", "tw", "wh", "wr", "sch", "scr", "shr",
		"sph", "spl", "spr", "squ", "str", "thr",
	}
	syllableVowels  = []string{"a", "e", "i", "o", "u"}
	finalConsonants = []string{
		"b", "d", "f", "g", "k", "l", "m", "n", "p", "r", "s", "t", "x", "z",
		"ch", "ck", "ct", "ft", "ld", "lk", "lp", "lt", "mp", "nd", "ng", "nk", "nt", "pt",
		"rd", "rk", "rm", "rn", "rp", "rt", "sh", "sk", "sp", "ss", "st", "th",
	}
)

// PseudoWords builds pronounceable consonant-vowel-consonant words.
type PseudoWords struct {
	rng *rand.Rand
}

// NewPseudoWords returns a WordSource drawing from rng.
func NewPseudoWords(rng *rand.Rand) *PseudoWords {
	return &PseudoWords{rng: rng}
}

// Word returns one pseudo-word.
func (p *PseudoWords) Word() string {
	return pick(p.rng, initialConsonants) + pick(p.rng, syllableVowels) + pick(p.rng, finalConsonants)
}

// Words yields n pseudo-words, generated on demand.
func (p *PseudoWords) Words(n int) iter.Seq[string] {
	return func(yield func(string) bool) {
		for i := 0; i < n; i++ {
			if !yield(p.Word()) {
				return
			}
		}
	}
}

func pick(rng *rand.Rand, items []string) string {
	return items[rng.IntN(len(items))]
}
