package cleaner

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"corpusprep/internal/fileutil"
	"corpusprep/internal/logging"
)

// Defaults match the layout of the Enron MySQL dump.
const (
	DefaultHeaderRows = 196
	DefaultColumn     = 4
	DefaultEncoding   = "utf-8"
)

// sizeMarkerPattern matches the "=<digits>" size markers embedded in the
// dump. One global substitution removes every match; matches never overlap.
var sizeMarkerPattern = regexp.MustCompile(`=+[0-9]+`)

// Options configures a Cleaner.
type Options struct {
	// HeaderRows is the number of leading records ignored entirely.
	HeaderRows int
	// Column is the zero-based field index extracted from each record.
	Column int
	// Encoding names the input character set.
	Encoding string
}

// DefaultOptions returns the options used for the Enron dump.
func DefaultOptions() Options {
	return Options{
		HeaderRows: DefaultHeaderRows,
		Column:     DefaultColumn,
		Encoding:   DefaultEncoding,
	}
}

// Stats summarizes a cleaning pass.
type Stats struct {
	Rows      int // records seen, blank lines included
	Skipped   int // records inside the preamble
	Malformed int // records with too few fields
	Written   int // lines emitted
}

// Cleaner turns dump records into cleaned text lines.
type Cleaner struct {
	opts    Options
	decoder func(io.Reader) io.Reader
	logger  *slog.Logger
}

// New validates opts and resolves the input decoder.
func New(opts Options, logger *slog.Logger) (*Cleaner, error) {
	if opts.HeaderRows < 0 {
		return nil, fmt.Errorf("header rows must be >= 0, got %d", opts.HeaderRows)
	}
	if opts.Column < 0 {
		return nil, fmt.Errorf("column must be >= 0, got %d", opts.Column)
	}
	decoder, err := decoderFor(opts.Encoding)
	if err != nil {
		return nil, err
	}
	return &Cleaner{
		opts:    opts,
		decoder: decoder,
		logger:  logging.NewComponentLogger(logger, "cleaner"),
	}, nil
}

func decoderFor(name string) (func(io.Reader) io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return func(r io.Reader) io.Reader { return r }, nil
	case "latin1", "iso-8859-1":
		return func(r io.Reader) io.Reader {
			return transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
		}, nil
	case "windows-1252", "cp1252":
		return func(r io.Reader) io.Reader {
			return transform.NewReader(r, charmap.Windows1252.NewDecoder())
		}, nil
	default:
		return nil, fmt.Errorf("unsupported input encoding %q", name)
	}
}

// CleanLine removes every size marker from field, then strips at most one
// leading and one trailing apostrophe.
func (c *Cleaner) CleanLine(field string) string {
	line := sizeMarkerPattern.ReplaceAllString(field, "")
	line = strings.TrimPrefix(line, "'")
	line = strings.TrimSuffix(line, "'")
	return line
}

// Clean reads records from r and writes one cleaned line per qualifying
// record to w, in input order.
func (c *Cleaner) Clean(r io.Reader, w io.Writer) (Stats, error) {
	var stats Stats

	reader := newRecordReader(c.decoder(r))
	writer := bufio.NewWriter(w)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return stats, fmt.Errorf("read record %d: %w", stats.Rows, err)
		}

		if !c.tally(&stats, len(record)) {
			continue
		}
		if _, err := writer.WriteString(c.CleanLine(record[c.opts.Column])); err != nil {
			return stats, err
		}
		if err := writer.WriteByte('\n'); err != nil {
			return stats, err
		}
		stats.Written++
	}
	if err := writer.Flush(); err != nil {
		return stats, err
	}
	return stats, nil
}

// tally counts one record with the given field count and reports whether it
// should be emitted.
func (c *Cleaner) tally(stats *Stats, fields int) bool {
	index := stats.Rows
	stats.Rows++
	if index < c.opts.HeaderRows {
		stats.Skipped++
		return false
	}
	if fields <= c.opts.Column {
		stats.Malformed++
		c.logger.Debug("skipping short record", logging.Int("record", index), logging.Int("fields", fields))
		return false
	}
	return true
}

// CleanFile cleans inPath into outPath. The output is truncated before the
// input is opened, so a missing input leaves an empty output behind. The
// output handle is closed on every path.
func (c *Cleaner) CleanFile(inPath, outPath string) (stats Stats, err error) {
	out, err := fileutil.CreateTruncate(outPath)
	if err != nil {
		return stats, err
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = &fileutil.AccessError{Op: "close", Path: outPath, Err: closeErr}
		}
	}()

	in, err := fileutil.Open(inPath)
	if err != nil {
		return stats, err
	}
	defer in.Close()

	stats, err = c.Clean(in, out)
	if err != nil {
		return stats, fmt.Errorf("clean %s: %w", inPath, err)
	}
	c.logger.Info("cleaning complete",
		logging.String("input", inPath),
		logging.String("output", outPath),
		logging.Int("rows", stats.Rows),
		logging.Int("written", stats.Written),
		logging.Int("malformed", stats.Malformed),
	)
	return stats, nil
}
