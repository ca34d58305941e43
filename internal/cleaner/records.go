package cleaner

import (
	"bufio"
	"io"
)

type parseState int

const (
	startRecord parseState = iota
	startField
	inField
	inQuotedField
	quoteInQuotedField
)

// recordReader splits comma separated records with the quoting rules of the
// dump exporter's reader. A closing quote followed by more text ends the
// quoted part and the remaining characters are kept literally up to the next
// comma or line break. A blank line is an empty record. Input ending inside a
// quoted field yields the partial record.
type recordReader struct {
	r      *bufio.Reader
	record []string
	field  []byte
}

func newRecordReader(r io.Reader) *recordReader {
	return &recordReader{r: bufio.NewReaderSize(r, 64*1024)}
}

// Read returns the next record. The slice is reused by the following call.
func (rr *recordReader) Read() ([]string, error) {
	rr.record = rr.record[:0]
	rr.field = rr.field[:0]
	state := startRecord

	for {
		b, err := rr.r.ReadByte()
		if err == io.EOF {
			if state == startRecord {
				return nil, io.EOF
			}
			rr.saveField()
			return rr.record, nil
		}
		if err != nil {
			return nil, err
		}

		switch state {
		case startRecord:
			if b == '\n' || b == '\r' {
				rr.endLine(b)
				return rr.record, nil
			}
			state = rr.startField(b)
		case startField:
			if b == '\n' || b == '\r' {
				rr.saveField()
				rr.endLine(b)
				return rr.record, nil
			}
			state = rr.startField(b)
		case inField:
			switch b {
			case ',':
				rr.saveField()
				state = startField
			case '\n', '\r':
				rr.saveField()
				rr.endLine(b)
				return rr.record, nil
			default:
				rr.field = append(rr.field, b)
			}
		case inQuotedField:
			if b == '"' {
				state = quoteInQuotedField
			} else {
				rr.field = append(rr.field, b)
			}
		case quoteInQuotedField:
			switch b {
			case '"':
				rr.field = append(rr.field, '"')
				state = inQuotedField
			case ',':
				rr.saveField()
				state = startField
			case '\n', '\r':
				rr.saveField()
				rr.endLine(b)
				return rr.record, nil
			default:
				rr.field = append(rr.field, b)
				state = inField
			}
		}
	}
}

func (rr *recordReader) startField(b byte) parseState {
	switch b {
	case '"':
		return inQuotedField
	case ',':
		rr.saveField()
		return startField
	default:
		rr.field = append(rr.field, b)
		return inField
	}
}

func (rr *recordReader) saveField() {
	rr.record = append(rr.record, string(rr.field))
	rr.field = rr.field[:0]
}

// endLine swallows the '\n' of a "\r\n" pair.
func (rr *recordReader) endLine(b byte) {
	if b != '\r' {
		return
	}
	if next, err := rr.r.Peek(1); err == nil && next[0] == '\n' {
		_, _ = rr.r.ReadByte()
	}
}
