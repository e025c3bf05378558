// Package demo implements the demonstration and inspection layer of
// chmap: a slot layout printer, YAML dataset loading and a small HTTP
// key-value endpoint. It is decoupled from the map's internal
// representation and uses only the public chmap API.
package demo

import (
	"fmt"
	"io"

	"github.com/graph-guard/chmap"
	"github.com/graph-guard/chmap/internal/math"

	"github.com/dustin/go-humanize"
)

// Fprint renders the occupied slots of m to w, one line per slot in
// index order, each chain printed head to tail:
//
//	[    3]: "key a": "1", "key b": "2"
//
// followed by a summary line.
func Fprint(w io.Writer, m *chmap.Map[string, string]) error {
	var err error
	lastSlot, occupied, entries, chainLen, longest := -1, 0, 0, 0, 0
	m.VisitSlots(func(slot int, key, value string) bool {
		if slot != lastSlot {
			if lastSlot != -1 {
				if _, err = fmt.Fprintln(w); err != nil {
					return true
				}
			}
			if _, err = fmt.Fprintf(w, "[%5d]: %q: %q", slot, key, value); err != nil {
				return true
			}
			lastSlot, occupied, chainLen = slot, occupied+1, 1
		} else {
			if _, err = fmt.Fprintf(w, ", %q: %q", key, value); err != nil {
				return true
			}
			chainLen++
		}
		longest = math.Max(longest, chainLen)
		entries++
		return false
	})
	if err != nil {
		return err
	}
	if lastSlot != -1 {
		if _, err = fmt.Fprintln(w); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(
		w, "%s entries across %s of %s slots (longest chain: %d)\n",
		humanize.Comma(int64(entries)),
		humanize.Comma(int64(occupied)),
		humanize.Comma(int64(m.Capacity())),
		longest,
	)
	return err
}
