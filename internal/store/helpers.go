package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// setBuilder accumulates columns for a partial UPDATE. Only fields the
// caller actually supplied end up in the SET clause.
type setBuilder struct {
	cols []string
	args []any
}

func (b *setBuilder) add(col string, v any) {
	b.args = append(b.args, v)
	b.cols = append(b.cols, fmt.Sprintf("%s = $%d", col, len(b.args)))
}

func (b *setBuilder) empty() bool { return len(b.cols) == 0 }

// clause returns the SET body and the placeholder index for the WHERE id.
func (b *setBuilder) clause() (string, int) {
	return strings.Join(b.cols, ", "), len(b.args) + 1
}

const pgUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
