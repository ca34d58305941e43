package cleaner

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"corpusprep/internal/fileutil"
	"corpusprep/internal/logging"
)

func newTestCleaner(t *testing.T, headerRows int, encoding string) *Cleaner {
	t.Helper()
	opts := DefaultOptions()
	opts.HeaderRows = headerRows
	opts.Encoding = encoding
	c, err := New(opts, logging.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func runClean(t *testing.T, c *Cleaner, input string) (string, Stats) {
	t.Helper()
	var out bytes.Buffer
	stats, err := c.Clean(strings.NewReader(input), &out)
	if err != nil {
		t.Fatalf("Clean: %v", err)
	}
	return out.String(), stats
}

func TestCleanLine(t *testing.T) {
	c := newTestCleaner(t, 0, "")
	cases := []struct {
		in   string
		want string
	}{
		{"'hello=12 world=99'", "hello world"},
		{"plain text", "plain text"},
		{"==7a=", "a="},
		{"''quoted''", "'quoted'"},
		{"'", ""},
		{"=12'x'", "x"},
		{"a=b=3c", "a=bc"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := c.CleanLine(tc.in); got != tc.want {
			t.Errorf("CleanLine(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCleanHeaderBoundary(t *testing.T) {
	var b strings.Builder
	for i := 0; i < DefaultHeaderRows; i++ {
		b.WriteString("h,h,h,h,header\n")
	}
	b.WriteString("1,2,3,4,'body=42 text'\n")

	out, stats := runClean(t, newTestCleaner(t, DefaultHeaderRows, ""), b.String())
	if out != "body text\n" {
		t.Fatalf("unexpected output %q", out)
	}
	if stats.Skipped != DefaultHeaderRows || stats.Written != 1 || stats.Rows != DefaultHeaderRows+1 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}

func TestCleanLastHeaderRowProducesNothing(t *testing.T) {
	out, stats := runClean(t, newTestCleaner(t, 3, ""), "a,b,c,d,e\na,b,c,d,e\na,b,c,d,e\n")
	if out != "" {
		t.Fatalf("expected no output, got %q", out)
	}
	if stats.Skipped != 3 {
		t.Fatalf("expected 3 skipped rows, got %+v", stats)
	}
}

func TestCleanCountsBlankLinesAsRecords(t *testing.T) {
	out, stats := runClean(t, newTestCleaner(t, 2, ""), "\n\nx,x,x,x,first\n")
	if out != "first\n" {
		t.Fatalf("unexpected output %q", out)
	}
	if stats.Rows != 3 || stats.Skipped != 2 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}

func TestCleanBlankLineAfterHeaderIsMalformed(t *testing.T) {
	out, stats := runClean(t, newTestCleaner(t, 0, ""), "a,b,c,d,one\n\na,b,c,d,two\n")
	if out != "one\ntwo\n" {
		t.Fatalf("unexpected output %q", out)
	}
	if stats.Malformed != 1 || stats.Rows != 3 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}

func TestCleanShortRowDoesNotAbort(t *testing.T) {
	out, stats := runClean(t, newTestCleaner(t, 0, ""), "a,b\nx,x,x,x,one\nshort\nx,x,x,x,two,extra\n")
	if out != "one\ntwo\n" {
		t.Fatalf("unexpected output %q", out)
	}
	if stats.Malformed != 2 || stats.Written != 2 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}

func TestCleanMultilineQuotedFields(t *testing.T) {
	input := "1,2,3,4,\"x\ny\"\n\n5,6,7,8,\"multi\nline\"\n"
	out, stats := runClean(t, newTestCleaner(t, 2, ""), input)
	if out != "multi\nline\n" {
		t.Fatalf("unexpected output %q", out)
	}
	if stats.Rows != 3 {
		t.Fatalf("expected the multi-line record and the blank line to count once each, got %+v", stats)
	}
}

func TestCleanTextAfterClosingQuoteDoesNotSwallowRows(t *testing.T) {
	input := "1,2,3,4,\"Hello\" she said\n1,2,3,4,second\n1,2,3,4,third\n"
	out, stats := runClean(t, newTestCleaner(t, 0, ""), input)
	if out != "Hello she said\nsecond\nthird\n" {
		t.Fatalf("unexpected output %q", out)
	}
	if stats.Rows != 3 || stats.Written != 3 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}

func TestCleanDecodesLatin1(t *testing.T) {
	out, _ := runClean(t, newTestCleaner(t, 0, "latin1"), "a,b,c,d,caf\xe9\n")
	if out != "café\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestNewRejectsBadOptions(t *testing.T) {
	if _, err := New(Options{HeaderRows: -1}, nil); err == nil {
		t.Fatal("expected error for negative header rows")
	}
	if _, err := New(Options{Encoding: "klingon"}, nil); err == nil {
		t.Fatal("expected error for unknown encoding")
	}
}

func TestCleanFileMissingInputLeavesEmptyOutput(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "cleaned.txt")
	if err := os.WriteFile(outPath, []byte("previous run\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := newTestCleaner(t, 0, "").CleanFile(filepath.Join(dir, "missing.sql"), outPath)
	if !fileutil.IsAccessError(err) {
		t.Fatalf("expected AccessError, got %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got %v", err)
	}
	got, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("output should remain on disk: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected truncated output, got %q", got)
	}
}

func TestCleanFileWritesOutput(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "dump.sql")
	outPath := filepath.Join(dir, "cleaned.txt")
	if err := os.WriteFile(inPath, []byte("skip,me\n1,2,3,4,'hi=3'\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	stats, err := newTestCleaner(t, 1, "").CleanFile(inPath, outPath)
	if err != nil {
		t.Fatalf("CleanFile: %v", err)
	}
	if stats.Written != 1 {
		t.Fatalf("unexpected stats %+v", stats)
	}
	got, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "hi\n" {
		t.Fatalf("unexpected output %q", got)
	}
}
