package markov

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"
)

const trainingCorpus = `the quick brown fox jumps over the lazy dog
she sells sea shells by the sea shore
a stitch in time saves nine
the rain in spain stays mainly in the plain
all that glitters is not gold
`

func trainedModel(t *testing.T) *Model {
	t.Helper()
	m, err := Train(strings.NewReader(trainingCorpus), 3)
	if err != nil {
		t.Fatalf("Train: %v", err)
	}
	return m
}

func TestTrainRejectsSmallN(t *testing.T) {
	if _, err := Train(strings.NewReader("abc"), 1); err == nil {
		t.Fatal("expected error for n < 2")
	}
}

func TestTransitionsAreNormalized(t *testing.T) {
	m := trainedModel(t)
	for prefix, successors := range m.probs {
		total := 0.0
		for _, logProb := range successors {
			total += math.Exp(logProb)
		}
		if math.Abs(total-1) > 1e-9 {
			t.Fatalf("prefix %q probabilities sum to %f", prefix, total)
		}
	}
}

func TestScoreUnknownTransition(t *testing.T) {
	m := trainedModel(t)
	if _, err := m.Score("qqqzzz"); !errors.Is(err, ErrUnknownTransition) {
		t.Fatalf("expected ErrUnknownTransition, got %v", err)
	}
	score, err := m.Score("the")
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if score > 0 {
		t.Fatalf("log probability should not be positive, got %f", score)
	}
}

func TestCalibrateAndCheck(t *testing.T) {
	m := trainedModel(t)
	good := "the sea\nin the rain\n"
	// Unscorable lines are ignored; the long repetitive line sets the bad bound.
	bad := "xqzv\n" + strings.Repeat("sea shells ", 5) + "\n"

	threshold, err := m.Calibrate(strings.NewReader(good), strings.NewReader(bad))
	if err != nil {
		t.Fatalf("Calibrate: %v", err)
	}
	if threshold != m.Threshold {
		t.Fatalf("threshold not stored on model")
	}
	if !m.Check("the sea") {
		t.Fatal("expected good line to pass")
	}
	if m.Check("xqzv") {
		t.Fatal("expected unscorable line to fail")
	}
}

func TestCalibrateAcceptsLongLines(t *testing.T) {
	m := trainedModel(t)
	good := "the sea\nin the rain\n"
	bad := strings.Repeat("sea shells ", 10000) + "\n"
	if len(bad) <= 64*1024 {
		t.Fatalf("bad line should exceed the default scanner buffer, got %d bytes", len(bad))
	}

	threshold, err := m.Calibrate(strings.NewReader(good), strings.NewReader(bad))
	if err != nil {
		t.Fatalf("Calibrate: %v", err)
	}
	if math.IsInf(threshold, 0) || math.IsNaN(threshold) {
		t.Fatalf("expected finite threshold, got %f", threshold)
	}
}

func TestCalibrateNeedsScorableLines(t *testing.T) {
	m := trainedModel(t)
	if _, err := m.Calibrate(strings.NewReader("qqqq\n"), strings.NewReader("the\n")); err == nil {
		t.Fatal("expected error when no good line is scorable")
	}
}

func TestDetectSkipsNullTerminators(t *testing.T) {
	m := trainedModel(t)
	m.Threshold = math.Inf(-1)

	var out bytes.Buffer
	summary, err := Detect(strings.NewReader("the sea\nNULL);\nxqzv\n"), &out, m, nil)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if summary.Total != 2 || summary.Good != 1 {
		t.Fatalf("unexpected summary %+v", summary)
	}
	if out.String() != "the sea\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
	if summary.String() != "Good: 1, Total: 2, Accuracy: 0.500000" {
		t.Fatalf("unexpected summary text %q", summary.String())
	}
}

func TestDetectLogsScoresOnlyAtDebug(t *testing.T) {
	m := trainedModel(t)
	m.Threshold = math.Inf(-1)

	for _, tc := range []struct {
		level   slog.Level
		wantLog bool
	}{
		{level: slog.LevelDebug, wantLog: true},
		{level: slog.LevelInfo, wantLog: false},
	} {
		var logs bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: tc.level}))
		if _, err := Detect(strings.NewReader("the sea\n"), &bytes.Buffer{}, m, logger); err != nil {
			t.Fatalf("Detect: %v", err)
		}
		if got := strings.Contains(logs.String(), `"entropy"`); got != tc.wantLog {
			t.Fatalf("level %v: entropy logged = %v, want %v (%q)", tc.level, got, tc.wantLog, logs.String())
		}
	}
}

func TestEntropy(t *testing.T) {
	if got := Entropy("aaaa"); got != 0 {
		t.Fatalf("entropy of a constant string should be 0, got %f", got)
	}
	if got, want := Entropy("ab"), math.Log(2); math.Abs(got-want) > 1e-12 {
		t.Fatalf("Entropy(ab) = %f, want %f", got, want)
	}
	if got := Entropy(""); got != 0 {
		t.Fatalf("entropy of empty string should be 0, got %f", got)
	}
}
