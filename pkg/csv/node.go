package csv

import (
	"fmt"
	"io"

	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-progcsv/internal/tokenizer"
)

// Parse tokenizes raw and returns it as a Shape AST.
//
// The result is an *ast.ArrayDataNode of records:
//   - each record is an *ast.ArrayDataNode of fields, positioned at the start
//     of its line
//   - each field is an *ast.LiteralNode holding a string, positioned at the
//     first byte of its content (just past the opening quote for quoted
//     fields)
//
// Positions carry the absolute byte offset, the 1-based line and the 1-based
// byte column. Field values are identical to those Tokenize returns.
func Parse(raw string) (ast.SchemaNode, error) {
	return ParseWithOptions(raw, DefaultOptions())
}

// ParseReader is Parse over an io.Reader.
func ParseReader(reader io.Reader) (ast.SchemaNode, error) {
	return ParseReaderWithOptions(reader, DefaultOptions())
}

func buildNode(lines *tokenizer.LineReader, opts Options) (ast.SchemaNode, error) {
	records := make([]ast.SchemaNode, 0, 64)
	for {
		line, ok := lines.Next()
		if !ok {
			break
		}

		fields, err := parseLine(line)
		if err != nil {
			return nil, err
		}

		nodes := make([]ast.SchemaNode, len(fields))
		values := make(Row, len(fields))
		for i, f := range fields {
			pos := ast.NewPosition(line.Offset+f.Offset, line.Number+1, f.Offset+1)
			nodes[i] = ast.NewLiteralNode(f.Value, pos)
			values[i] = f.Value
		}
		if opts.OnRow != nil {
			opts.OnRow(line.Number, values)
		}

		records = append(records, ast.NewArrayDataNode(nodes, ast.NewPosition(line.Offset, line.Number+1, 1)))
	}

	return ast.NewArrayDataNode(records, ast.ZeroPosition()), nil
}

// TableFromNode converts an AST produced by Parse back into a Table.
//
// Non-string literal values are formatted with %v and nil values become "".
func TableFromNode(node ast.SchemaNode) (Table, error) {
	if node == nil {
		return Table{}, nil
	}

	file, ok := node.(*ast.ArrayDataNode)
	if !ok {
		return nil, fmt.Errorf("unsupported node type for table: %T", node)
	}

	elements := file.Elements()
	table := make(Table, len(elements))
	for i, elem := range elements {
		record, ok := elem.(*ast.ArrayDataNode)
		if !ok {
			return nil, fmt.Errorf("record %d: unexpected element type %T", i, elem)
		}
		row, err := rowFromNode(record)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		table[i] = row
	}
	return table, nil
}

func rowFromNode(record *ast.ArrayDataNode) (Row, error) {
	elements := record.Elements()
	row := make(Row, len(elements))
	for i, elem := range elements {
		lit, ok := elem.(*ast.LiteralNode)
		if !ok {
			return nil, fmt.Errorf("field %d: unexpected element type %T", i, elem)
		}
		switch v := lit.Value().(type) {
		case string:
			row[i] = v
		case nil:
			row[i] = ""
		default:
			row[i] = fmt.Sprintf("%v", v)
		}
	}
	return row, nil
}

// Node returns the table as an AST shaped like Parse's result. Positions are
// zero because a Table does not record where its fields came from.
func (t Table) Node() ast.SchemaNode {
	records := make([]ast.SchemaNode, len(t))
	for i, row := range t {
		fields := make([]ast.SchemaNode, len(row))
		for j, field := range row {
			fields[j] = ast.NewLiteralNode(field, ast.ZeroPosition())
		}
		records[i] = ast.NewArrayDataNode(fields, ast.ZeroPosition())
	}
	return ast.NewArrayDataNode(records, ast.ZeroPosition())
}
