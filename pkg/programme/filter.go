package programme

import (
	"strings"
	"unicode"

	"github.com/shapestone/shape-progcsv/pkg/csv"
)

// Filter trims surrounding whitespace (and any byte order mark) from every
// field, then drops rows with fewer than two fields.
//
// The input table is not modified.
func Filter(table csv.Table) csv.Table {
	entries := filter(table)
	out := make(csv.Table, len(entries))
	for i, e := range entries {
		out[i] = e.row
	}
	return out
}

// entry is a filtered row with the index of its line in the input table.
type entry struct {
	line int
	row  csv.Row
}

func filter(table csv.Table) []entry {
	entries := make([]entry, 0, len(table))
	for i, row := range table {
		if len(row) <= 1 {
			continue
		}
		trimmed := make(csv.Row, len(row))
		for j, field := range row {
			trimmed[j] = strings.TrimFunc(field, isTrimmable)
		}
		entries = append(entries, entry{line: i, row: trimmed})
	}
	return entries
}

// isTrimmable matches the whitespace a JavaScript trim removes. NEL is
// not part of that set and is kept.
func isTrimmable(r rune) bool {
	return (unicode.IsSpace(r) && r != '\u0085') || r == '\uFEFF'
}
