package postgresql

import (
	"fmt"
	"strings"
)

// whereBuilder accumulates AND-ed conditions with positional arguments.
type whereBuilder struct {
	clauses []string
	args    []any
}

func newWhereBuilder(first string, arg any) *whereBuilder {
	return &whereBuilder{clauses: []string{first}, args: []any{arg}}
}

// And adds a condition; clause holds a single %d verb for the argument position.
func (w *whereBuilder) And(clause string, arg any) {
	w.args = append(w.args, arg)
	w.clauses = append(w.clauses, fmt.Sprintf(clause, len(w.args)))
}

func (w *whereBuilder) String() string {
	return strings.Join(w.clauses, " AND ")
}

func (w *whereBuilder) Args() []any {
	return w.args
}

// Page converts a 1-based page into LIMIT and OFFSET.
func (w *whereBuilder) Page(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	return limit, (page - 1) * limit
}
