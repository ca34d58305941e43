package gibberish

import (
	"bufio"
	"io"
	"math/rand/v2"
	"strings"
)

// Sampling defaults.
const (
	DefaultMeanWordLength     = 4.5
	DefaultStdWordLength      = 2.0
	DefaultMeanSentenceLength = 17.5
)

// Params holds the distribution parameters used for sampling.
type Params struct {
	MeanWordLength     float64
	StdWordLength      float64
	MeanSentenceLength float64
}

// DefaultParams returns the standard sampling parameters.
func DefaultParams() Params {
	return Params{
		MeanWordLength:     DefaultMeanWordLength,
		StdWordLength:      DefaultStdWordLength,
		MeanSentenceLength: DefaultMeanSentenceLength,
	}
}

// WriteOptions controls the layout of Write output.
type WriteOptions struct {
	// SeparateBlocks inserts an empty line between consecutive blocks.
	SeparateBlocks bool
}

// BlockCount is the number of blocks emitted by Write.
const BlockCount = 8

// Generator samples synthetic tokens and sentences.
type Generator struct {
	rng    *rand.Rand
	params Params
	words  WordSource
}

// New returns a Generator. When words is nil a PseudoWords source sharing rng
// is used.
func New(rng *rand.Rand, params Params, words WordSource) *Generator {
	if words == nil {
		words = NewPseudoWords(rng)
	}
	return &Generator{rng: rng, params: params, words: words}
}

// WordLength draws a token length from Normal(mean, std), truncated toward
// zero. Negative draws clamp to zero, which yields an empty token.
func (g *Generator) WordLength() int {
	n := int(g.rng.NormFloat64()*g.params.StdWordLength + g.params.MeanWordLength)
	if n < 0 {
		return 0
	}
	return n
}

// Garbage returns a token sampled byte by byte from a.
func (g *Generator) Garbage(a Alphabet) string {
	n := g.WordLength()
	if n == 0 || len(a) == 0 {
		return ""
	}
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = a[g.rng.IntN(len(a))]
	}
	return string(buf)
}

// SentenceLength draws a word count from an exponential distribution with
// the configured mean.
func (g *Generator) SentenceLength() int {
	return g.exponential(g.params.MeanSentenceLength)
}

// SentenceRange draws a word count from an exponential whose mean is itself
// a SentenceLength draw. A zero mean yields zero words.
func (g *Generator) SentenceRange() int {
	return g.exponential(float64(g.SentenceLength()))
}

func (g *Generator) exponential(mean float64) int {
	if mean <= 0 {
		return 0
	}
	return int(g.rng.ExpFloat64() * mean)
}

// WordSentence joins SentenceLength pseudo-words with spaces.
func (g *Generator) WordSentence() string {
	var words []string
	for w := range g.words.Words(g.SentenceLength()) {
		words = append(words, w)
	}
	return strings.Join(words, " ")
}

// GarbageSentence joins SentenceRange garbage tokens from a with spaces.
func (g *Generator) GarbageSentence(a Alphabet) string {
	n := g.SentenceRange()
	tokens := make([]string, n)
	for i := range tokens {
		tokens[i] = g.Garbage(a)
	}
	return strings.Join(tokens, " ")
}

// Write emits the eight blocks of n lines each: pseudo-words, pseudo-word
// sentences, then token and sentence blocks for vowels, consonants and the
// full alphabet.
func (g *Generator) Write(w io.Writer, n int, opts WriteOptions) error {
	out := bufio.NewWriter(w)

	for word := range g.words.Words(n) {
		if err := writeLine(out, word); err != nil {
			return err
		}
	}

	blocks := []func() string{
		g.WordSentence,
		func() string { return g.Garbage(Vowels) },
		func() string { return g.GarbageSentence(Vowels) },
		func() string { return g.Garbage(Consonants) },
		func() string { return g.GarbageSentence(Consonants) },
		func() string { return g.Garbage(Everything) },
		func() string { return g.GarbageSentence(Everything) },
	}
	for _, next := range blocks {
		if opts.SeparateBlocks {
			if err := out.WriteByte('\n'); err != nil {
				return err
			}
		}
		for j := 0; j < n; j++ {
			if err := writeLine(out, next()); err != nil {
				return err
			}
		}
	}
	return out.Flush()
}

func writeLine(w *bufio.Writer, line string) error {
	if _, err := w.WriteString(line); err != nil {
		return err
	}
	return w.WriteByte('\n')
}
