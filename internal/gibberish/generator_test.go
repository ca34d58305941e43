package gibberish

import (
	"bytes"
	"iter"
	"strings"
	"testing"

	"corpusprep/internal/randsrc"
)

type fixedWords struct{ calls int }

func (f *fixedWords) Words(n int) iter.Seq[string] {
	f.calls++
	return func(yield func(string) bool) {
		for i := 0; i < n; i++ {
			if !yield("word") {
				return
			}
		}
	}
}

func TestWriteProducesEightBlocks(t *testing.T) {
	const n = 5
	gen := New(randsrc.Seeded(1), DefaultParams(), &fixedWords{})

	var out bytes.Buffer
	if err := gen.Write(&out, n, WriteOptions{SeparateBlocks: true}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if want := BlockCount*n + BlockCount - 1; len(lines) != want {
		t.Fatalf("got %d lines, want %d", len(lines), want)
	}

	block := func(k int) []string {
		start := k * (n + 1)
		if k > 0 && lines[start-1] != "" {
			t.Fatalf("expected blank separator before block %d, got %q", k, lines[start-1])
		}
		return lines[start : start+n]
	}

	for _, line := range block(0) {
		if line != "word" {
			t.Fatalf("unexpected dictionary line %q", line)
		}
	}
	for _, line := range block(1) {
		for _, w := range strings.Fields(line) {
			if w != "word" {
				t.Fatalf("unexpected sentence word %q", w)
			}
		}
	}

	alphabets := map[int]Alphabet{2: Vowels, 3: Vowels, 4: Consonants, 5: Consonants, 6: Everything, 7: Everything}
	for k, alpha := range alphabets {
		for _, line := range block(k) {
			if k%2 == 0 && strings.Contains(line, " ") {
				t.Fatalf("token block %d contains a space: %q", k, line)
			}
			if !alpha.Contains(strings.ReplaceAll(line, " ", "")) {
				t.Fatalf("block %d line %q escapes alphabet %q", k, line, alpha)
			}
		}
	}
}

func TestWriteWithoutSeparators(t *testing.T) {
	const n = 3
	gen := New(randsrc.Seeded(2), DefaultParams(), &fixedWords{})
	var out bytes.Buffer
	if err := gen.Write(&out, n, WriteOptions{}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := strings.Count(out.String(), "\n"); got != BlockCount*n {
		t.Fatalf("got %d lines, want %d", got, BlockCount*n)
	}
	if !strings.HasPrefix(out.String(), "word\nword\nword\n") {
		t.Fatalf("expected dictionary block first, got %q", out.String())
	}
}

func TestSeededGeneratorsAgree(t *testing.T) {
	render := func() string {
		rng := randsrc.Seeded(99)
		var out bytes.Buffer
		if err := New(rng, DefaultParams(), nil).Write(&out, 4, WriteOptions{}); err != nil {
			t.Fatalf("Write: %v", err)
		}
		return out.String()
	}
	if render() != render() {
		t.Fatal("seeded generators produced different output")
	}
}

func TestNegativeLengthsClampToEmpty(t *testing.T) {
	gen := New(randsrc.Seeded(3), Params{MeanWordLength: -50, StdWordLength: 0, MeanSentenceLength: 17.5}, nil)
	for i := 0; i < 100; i++ {
		if got := gen.Garbage(Vowels); got != "" {
			t.Fatalf("expected empty token, got %q", got)
		}
	}
}

func TestZeroMeanSentenceIsEmpty(t *testing.T) {
	gen := New(randsrc.Seeded(4), Params{MeanWordLength: 4.5, StdWordLength: 2, MeanSentenceLength: 1e-9}, nil)
	for i := 0; i < 100; i++ {
		if got := gen.GarbageSentence(Consonants); got != "" {
			t.Fatalf("expected empty sentence, got %q", got)
		}
	}
}

func TestWordLengthCentersOnMean(t *testing.T) {
	gen := New(randsrc.Seeded(5), DefaultParams(), nil)
	const draws = 20000
	total := 0
	for i := 0; i < draws; i++ {
		n := gen.WordLength()
		if n < 0 {
			t.Fatalf("negative length %d", n)
		}
		total += n
	}
	mean := float64(total) / draws
	if mean < 3.4 || mean > 4.6 {
		t.Fatalf("mean word length %.2f outside expected range", mean)
	}
}

func TestEverythingAlphabet(t *testing.T) {
	if len(Everything) != 31+29 {
		t.Fatalf("unexpected alphabet size %d", len(Everything))
	}
	if !Everything.Contains("!?09az}") {
		t.Fatal("expected punctuation, digits and lowercase letters")
	}
	if Everything.Contains("A") || Everything.Contains("~") || Everything.Contains(" ") {
		t.Fatal("alphabet should exclude uppercase, tilde and space")
	}
}

func TestPseudoWordsAreLowercaseLetters(t *testing.T) {
	src := NewPseudoWords(randsrc.Seeded(6))
	count := 0
	for w := range src.Words(50) {
		count++
		if len(w) < 3 {
			t.Fatalf("pseudo-word too short: %q", w)
		}
		for _, r := range w {
			if r < 'a' || r > 'z' {
				t.Fatalf("unexpected rune %q in %q", r, w)
			}
		}
	}
	if count != 50 {
		t.Fatalf("got %d words, want 50", count)
	}
}
