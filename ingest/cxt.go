package ingest

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/fcalib/bitset"
	"github.com/katalvlaran/fcalib/fcontext"
)

// lineReader reads lines from a bufio.Scanner, tracking the 1-based line
// number of the last line returned so parse errors can point at it.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func (lr *lineReader) next() (string, bool) {
	if !lr.sc.Scan() {
		return "", false
	}
	lr.line++
	return lr.sc.Text(), true
}

// ReadCXT parses the line-oriented ".cxt" textual matrix format:
//
//	B
//	<blank line>
//	<n>
//	<m>
//	<blank line>
//	<object label 1>
//	...
//	<object label n>
//	<attribute label 1>
//	...
//	<attribute label m>
//	<row 1, length m, '.'=0 'X'=1>
//	...
//	<row n>
//
// Any deviation — missing header or blank lines, a non-integer count, a
// row of the wrong length, or a character other than '.'/'X' in a matrix
// row — is a hard parse error returned as a *ParseError.
func ReadCXT(r io.Reader) (*fcontext.Context, error) {
	lr := &lineReader{sc: bufio.NewScanner(r)}

	header, ok := lr.next()
	if !ok {
		return nil, parseErrorf(0, "missing header line (expected \"B\")")
	}
	if strings.TrimSpace(header) != "B" {
		return nil, parseErrorf(lr.line, "expected header \"B\", got %q", header)
	}

	if err := lr.expectBlank(); err != nil {
		return nil, err
	}

	n, err := lr.readCount("number of objects")
	if err != nil {
		return nil, err
	}
	m, err := lr.readCount("number of attributes")
	if err != nil {
		return nil, err
	}

	if err := lr.expectBlank(); err != nil {
		return nil, err
	}

	objects, err := lr.readLabels(n, "object")
	if err != nil {
		return nil, err
	}
	attributes, err := lr.readLabels(m, "attribute")
	if err != nil {
		return nil, err
	}

	rows := make([]bitset.Set, n)
	for i := 0; i < n; i++ {
		raw, ok := lr.next()
		if !ok {
			return nil, parseErrorf(0, "missing relation row %d of %d", i+1, n)
		}
		trimmed := strings.TrimSpace(raw)
		if len(trimmed) != m {
			return nil, parseErrorf(lr.line, "row %d has length %d, want %d", i+1, len(trimmed), m)
		}
		row := bitset.NewSet(m)
		for j, ch := range trimmed {
			switch ch {
			case 'X':
				row.SetBit(j)
			case '.':
				// clear bit, nothing to do
			default:
				return nil, parseErrorf(lr.line, "invalid character %q in row %d (want '.' or 'X')", ch, i+1)
			}
		}
		rows[i] = row
	}

	ctx, err := fcontext.NewContext(objects, attributes, rows)
	if err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}
	return ctx, nil
}

func (lr *lineReader) expectBlank() error {
	raw, ok := lr.next()
	if !ok {
		return parseErrorf(0, "missing blank line at line %d", lr.line+1)
	}
	if strings.TrimSpace(raw) != "" {
		return parseErrorf(lr.line, "expected blank line, got %q", raw)
	}
	return nil
}

func (lr *lineReader) readCount(what string) (int, error) {
	raw, ok := lr.next()
	if !ok {
		return 0, parseErrorf(0, "missing %s", what)
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0, parseErrorf(lr.line, "invalid %s: %q", what, raw)
	}
	return n, nil
}

func (lr *lineReader) readLabels(count int, kind string) ([]string, error) {
	labels := make([]string, count)
	for i := 0; i < count; i++ {
		raw, ok := lr.next()
		if !ok {
			return nil, parseErrorf(0, "missing %s label %d of %d", kind, i+1, count)
		}
		labels[i] = strings.TrimSpace(raw)
	}
	return labels, nil
}
