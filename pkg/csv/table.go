package csv

// Row is one tokenized line: its fields in order.
type Row []string

// Field returns the field at index i, or "" if the row is shorter.
// Consumers address programme rows by position, so short rows read as blank.
func (r Row) Field(i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// Table is a tokenized CSV document, one Row per input line.
type Table []Row

// Strings returns the table as a plain 2D string slice.
func (t Table) Strings() [][]string {
	out := make([][]string, len(t))
	for i, row := range t {
		out[i] = []string(row)
	}
	return out
}
