package csv

import (
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"
)

// AST converts the table to Shape's AST: an *ast.ArrayDataNode of records,
// each an *ast.ArrayDataNode of *ast.LiteralNode string fields. This is the
// same shape other Shape format parsers produce.
func (t *Table) AST() *ast.ArrayDataNode {
	records := make([]ast.SchemaNode, len(t.rows))
	for i, row := range t.rows {
		fields := make([]ast.SchemaNode, len(row))
		for j, f := range row {
			fields[j] = ast.NewLiteralNode(f, ast.ZeroPosition())
		}
		records[i] = ast.NewArrayDataNode(fields, ast.ZeroPosition())
	}
	return ast.NewArrayDataNode(records, ast.ZeroPosition())
}

// FromAST builds a Table from an AST of the shape produced by AST.
// Non-string literal values are formatted with %v and nil becomes "".
func FromAST(node ast.SchemaNode) (*Table, error) {
	arrayNode, ok := node.(*ast.ArrayDataNode)
	if !ok {
		return nil, fmt.Errorf("expected *ast.ArrayDataNode, got %T", node)
	}

	rows := make([][]string, 0, len(arrayNode.Elements()))
	for _, elem := range arrayNode.Elements() {
		recordNode, ok := elem.(*ast.ArrayDataNode)
		if !ok {
			return nil, fmt.Errorf("expected record to be *ast.ArrayDataNode, got %T", elem)
		}

		fields := make([]string, 0, len(recordNode.Elements()))
		for _, fieldNode := range recordNode.Elements() {
			literalNode, ok := fieldNode.(*ast.LiteralNode)
			if !ok {
				return nil, fmt.Errorf("expected field to be *ast.LiteralNode, got %T", fieldNode)
			}
			fields = append(fields, literalString(literalNode.Value()))
		}
		rows = append(rows, fields)
	}

	return NewTable(rows)
}

func literalString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
