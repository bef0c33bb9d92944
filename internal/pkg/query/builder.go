// Package query builds parameterized Spanner SELECT statements with a
// small fluent API. Parameter names are generated, so callers never keep
// SQL fragments and parameter maps in sync by hand.
package query

import (
	"fmt"
	"strings"

	"cloud.google.com/go/spanner"
)

// Direction is an ORDER BY direction.
type Direction int

const (
	// Asc sorts ascending.
	Asc Direction = iota
	// Desc sorts descending.
	Desc
)

// Builder assembles a SELECT statement. Builders are immutable; every
// method returns a copy, so partial queries can be shared safely.
type Builder struct {
	table      string
	selectCols []string
	conditions []condition
	orderCol   string
	orderDir   Direction
	limit      int64
}

type condition struct {
	field string
	value interface{}
}

// From starts a Builder for the given table.
func From(table string) *Builder {
	return &Builder{table: table}
}

// Select adds columns to retrieve.
func (b *Builder) Select(columns ...string) *Builder {
	nb := b.clone()
	nb.selectCols = append(nb.selectCols, columns...)
	return nb
}

// WhereEq adds an equality condition. Multiple conditions combine with AND.
func (b *Builder) WhereEq(field string, value interface{}) *Builder {
	nb := b.clone()
	nb.conditions = append(nb.conditions, condition{field: field, value: value})
	return nb
}

// OrderBy sets the sort column and direction.
func (b *Builder) OrderBy(column string, dir Direction) *Builder {
	nb := b.clone()
	nb.orderCol = column
	nb.orderDir = dir
	return nb
}

// Limit caps the number of rows returned. Zero means no limit.
func (b *Builder) Limit(n int64) *Builder {
	nb := b.clone()
	nb.limit = n
	return nb
}

// Build produces the spanner.Statement.
func (b *Builder) Build() spanner.Statement {
	var sql strings.Builder
	params := make(map[string]interface{})

	sql.WriteString("SELECT ")
	if len(b.selectCols) == 0 {
		sql.WriteString("*")
	} else {
		sql.WriteString(strings.Join(b.selectCols, ", "))
	}
	sql.WriteString(" FROM ")
	sql.WriteString(b.table)

	if len(b.conditions) > 0 {
		sql.WriteString(" WHERE ")
		parts := make([]string, 0, len(b.conditions))
		for i, cond := range b.conditions {
			name := fmt.Sprintf("p%d", i)
			parts = append(parts, fmt.Sprintf("%s = @%s", cond.field, name))
			params[name] = cond.value
		}
		sql.WriteString(strings.Join(parts, " AND "))
	}

	if b.orderCol != "" {
		sql.WriteString(" ORDER BY ")
		sql.WriteString(b.orderCol)
		if b.orderDir == Desc {
			sql.WriteString(" DESC")
		} else {
			sql.WriteString(" ASC")
		}
	}

	if b.limit > 0 {
		sql.WriteString(" LIMIT @limit")
		params["limit"] = b.limit
	}

	return spanner.Statement{SQL: sql.String(), Params: params}
}

func (b *Builder) clone() *Builder {
	nb := &Builder{
		table:      b.table,
		selectCols: make([]string, len(b.selectCols)),
		conditions: make([]condition, len(b.conditions)),
		orderCol:   b.orderCol,
		orderDir:   b.orderDir,
		limit:      b.limit,
	}
	copy(nb.selectCols, b.selectCols)
	copy(nb.conditions, b.conditions)
	return nb
}
