package repository

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// UpdateBuilder accumulates (column, value) pairs for a sparse UPDATE.
// Values are always bound as parameters, never interpolated.
type UpdateBuilder struct {
	columns []string
	args    []any
}

func NewUpdate() *UpdateBuilder {
	return &UpdateBuilder{}
}

func (b *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	b.columns = append(b.columns, column)
	b.args = append(b.args, value)
	return b
}

func (b *UpdateBuilder) Empty() bool {
	return len(b.columns) == 0
}

// SQL renders the UPDATE statement for table, keyed by id, and returns it
// with the bound argument list.
func (b *UpdateBuilder) SQL(table string, id uuid.UUID) (string, []any) {
	clauses := make([]string, len(b.columns))
	for i, col := range b.columns {
		clauses[i] = fmt.Sprintf("%s = $%d", col, i+1)
	}

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d",
		table, strings.Join(clauses, ", "), len(b.columns)+1)

	args := append(append([]any{}, b.args...), id)
	return query, args
}
