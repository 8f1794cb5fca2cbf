package ingest

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/fcalib/bitset"
	"github.com/katalvlaran/fcalib/fcontext"
)

// ReadDAT parses the sparse ".dat" attribute-list format: one line per
// object, each a whitespace-separated list of attributes that object
// has. The attribute universe is the union over all lines.
//
// Attribute ordering is first-seen insertion order, not Go's unordered
// map iteration, so column order — and therefore PCbO's enumeration
// order — is deterministic across runs for the same input.
//
// Object labels default to "obj0", "obj1", ....
func ReadDAT(r io.Reader) (*fcontext.Context, error) {
	sc := bufio.NewScanner(r)

	var perObject [][]string
	var attrOrder []string
	attrIndex := make(map[string]int)

	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		perObject = append(perObject, fields)
		for _, attr := range fields {
			if _, seen := attrIndex[attr]; !seen {
				attrIndex[attr] = len(attrOrder)
				attrOrder = append(attrOrder, attr)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}

	n := len(perObject)
	objects := make([]string, n)
	rows := make([]bitset.Set, n)
	for i, attrs := range perObject {
		objects[i] = fmt.Sprintf("obj%d", i)
		row := bitset.NewSet(len(attrOrder))
		for _, attr := range attrs {
			row.SetBit(attrIndex[attr])
		}
		rows[i] = row
	}

	ctx, err := fcontext.NewContext(objects, attrOrder, rows)
	if err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}
	return ctx, nil
}
