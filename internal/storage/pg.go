package storage

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// psql builds queries with PostgreSQL positional placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// likePattern wraps the term in wildcards, escaping LIKE metacharacters so
// the term always matches as a literal substring.
func likePattern(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + replacer.Replace(term) + "%"
}
