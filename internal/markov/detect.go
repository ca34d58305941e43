package markov

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"corpusprep/internal/logging"
)

// Summary counts the lines seen by Detect.
type Summary struct {
	Good  int
	Total int
}

// Accuracy is the share of lines accepted as valid text.
func (s Summary) Accuracy() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Good) / float64(s.Total)
}

func (s Summary) String() string {
	return fmt.Sprintf("Good: %d, Total: %d, Accuracy: %f", s.Good, s.Total, s.Accuracy())
}

// Detect writes every line of r that the model accepts to w. Lines reading
// "null);" (dump terminators) are ignored.
func Detect(r io.Reader, w io.Writer, m *Model, logger *slog.Logger) (Summary, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	debug := logger.Enabled(context.Background(), slog.LevelDebug)
	var summary Summary
	out := bufio.NewWriter(w)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(line, "null);") {
			continue
		}
		summary.Total++
		valid := m.Check(line)
		if debug {
			logger.Debug("scored line",
				logging.Bool("valid", valid),
				logging.Float64("entropy", Entropy(line)),
				logging.String("line", line),
			)
		}
		if !valid {
			continue
		}
		summary.Good++
		if _, err := out.WriteString(line + "\n"); err != nil {
			return summary, err
		}
	}
	if err := scanner.Err(); err != nil {
		return summary, fmt.Errorf("read input: %w", err)
	}
	return summary, out.Flush()
}
