// SPDX-License-Identifier: MIT
package fcontext

import (
	"fmt"
	"strings"
)

// String renders the context as a label-headered table, "1"/"0" marks,
// mirroring the Display format of the Rust original this package was
// ported from. Intended for debugging, not for the .cxt wire format
// (see package ingest for that).
func (c *Context) String() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var b strings.Builder
	fmt.Fprintf(&b, "%10s", "")
	for _, attr := range c.attributes {
		fmt.Fprintf(&b, "%5s", attr)
	}
	b.WriteByte('\n')
	for i, obj := range c.objects {
		fmt.Fprintf(&b, "%10s", obj)
		for j := range c.attributes {
			mark := "0"
			if c.rows[i].Get(j) {
				mark = "1"
			}
			fmt.Fprintf(&b, "%5s", mark)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
