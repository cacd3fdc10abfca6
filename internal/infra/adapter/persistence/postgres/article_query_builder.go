// Package postgres provides PostgreSQL implementations of repository interfaces.
package postgres

import (
	"fmt"
	"strings"

	"github.com/lib/pq"

	"knowbase/internal/pkg/search"
)

// ArticleQueryBuilder builds WHERE clauses for owner-scoped article queries.
// PostgreSQL-specific: uses ILIKE for case-insensitive keyword matching,
// the @> array containment operator for tag subset tests, and $N placeholders.
type ArticleQueryBuilder struct{}

// NewArticleQueryBuilder creates a new query builder instance.
func NewArticleQueryBuilder() *ArticleQueryBuilder {
	return &ArticleQueryBuilder{}
}

// BuildWhereClause builds the WHERE clause and arguments for a filtered list.
// Ownership is always the first condition; the keyword clause (title OR body)
// and the tag containment clause are appended when present and conjoined
// with AND.
func (qb *ArticleQueryBuilder) BuildWhereClause(ownerID string, q search.Query) (clause string, args []interface{}) {
	conditions := []string{"owner_id = $1"}
	args = append(args, ownerID)
	paramIndex := 2

	if q.Keyword != "" {
		conditions = append(conditions,
			fmt.Sprintf("(title ILIKE $%d OR body ILIKE $%d)", paramIndex, paramIndex))
		args = append(args, search.EscapeLike(q.Keyword))
		paramIndex++
	}

	if len(q.Tags) > 0 {
		// tags @> $n is a subset test: the row's tag array must contain
		// every element of the filter (AND semantics, not ANY).
		conditions = append(conditions, fmt.Sprintf("tags @> $%d", paramIndex))
		args = append(args, pq.Array(q.Tags))
	}

	return "WHERE " + strings.Join(conditions, " AND "), args
}
