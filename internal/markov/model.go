package markov

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
)

// ErrUnknownTransition is returned when a line contains an n-gram prefix or
// successor the model never saw.
var ErrUnknownTransition = errors.New("no probability for n-gram")

const padding = "  "

// maxLineSize bounds a single line read from any corpus.
const maxLineSize = 1 << 20

// Model holds log transition probabilities keyed by the (n-1)-byte prefix.
type Model struct {
	N         int
	Threshold float64
	probs     map[string]map[byte]float64
}

// Train builds a model of order n from the lines of r. Each line is trimmed,
// lowercased, and padded with two spaces on both sides so word boundaries get
// their own transitions.
func Train(r io.Reader, n int) (*Model, error) {
	if n < 2 {
		return nil, fmt.Errorf("n-gram size must be at least 2, got %d", n)
	}

	counts := make(map[string]map[byte]float64)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := padding + strings.TrimSpace(scanner.Text()) + padding
		for _, gram := range ngrams(line, n) {
			prefix, next := gram[:n-1], gram[n-1]
			if counts[prefix] == nil {
				counts[prefix] = make(map[byte]float64)
			}
			counts[prefix][next]++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read training corpus: %w", err)
	}

	probs := make(map[string]map[byte]float64, len(counts))
	for prefix, successors := range counts {
		total := 0.0
		for _, count := range successors {
			total += count
		}
		probs[prefix] = make(map[byte]float64, len(successors))
		for next, count := range successors {
			probs[prefix][next] = math.Log(count / total)
		}
	}
	return &Model{N: n, probs: probs}, nil
}

// Score returns the summed log probability of every transition in line.
func (m *Model) Score(line string) (float64, error) {
	logProb := 0.0
	for _, gram := range ngrams(line, m.N) {
		successors, ok := m.probs[gram[:m.N-1]]
		if !ok {
			return 0, fmt.Errorf("%w %q", ErrUnknownTransition, gram)
		}
		prob, ok := successors[gram[m.N-1]]
		if !ok {
			return 0, fmt.Errorf("%w %q", ErrUnknownTransition, gram)
		}
		logProb += prob
	}
	return logProb, nil
}

// Calibrate sets Threshold from known-good and known-bad corpora. Lines the
// model cannot score are ignored.
func (m *Model) Calibrate(good, bad io.Reader) (float64, error) {
	goodScores, err := m.scoreAll(good)
	if err != nil {
		return 0, fmt.Errorf("score good corpus: %w", err)
	}
	badScores, err := m.scoreAll(bad)
	if err != nil {
		return 0, fmt.Errorf("score bad corpus: %w", err)
	}
	if len(goodScores) == 0 || len(badScores) == 0 {
		return 0, errors.New("calibration needs at least one scorable good and bad line")
	}

	minGood := goodScores[0]
	for _, score := range goodScores {
		minGood = math.Min(minGood, score)
	}
	maxBad := badScores[0]
	for _, score := range badScores {
		maxBad = math.Max(maxBad, score)
	}

	m.Threshold = (minGood + maxBad) / 2
	return m.Threshold, nil
}

func (m *Model) scoreAll(r io.Reader) ([]float64, error) {
	var scores []float64
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		score, err := m.Score(strings.TrimSpace(scanner.Text()))
		if err != nil {
			continue
		}
		scores = append(scores, score)
	}
	return scores, scanner.Err()
}

// Check reports whether line scores above the threshold. Unscorable lines
// are rejected.
func (m *Model) Check(line string) bool {
	score, err := m.Score(line)
	if err != nil {
		return false
	}
	return score > m.Threshold
}

func ngrams(input string, n int) []string {
	input = strings.ToLower(input)
	if len(input) < n {
		return nil
	}
	grams := make([]string, 0, len(input)-n+1)
	for i := 0; i+n <= len(input); i++ {
		grams = append(grams, input[i:i+n])
	}
	return grams
}

// Entropy returns the Shannon entropy of s in nats, computed over runes.
func Entropy(s string) float64 {
	counts := make(map[rune]int)
	total := 0
	for _, r := range s {
		counts[r]++
		total++
	}
	result := 0.0
	for _, count := range counts {
		freq := float64(count) / float64(total)
		result -= freq * math.Log(freq)
	}
	return result
}
