package postgres_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	pg "knowbase/internal/infra/adapter/persistence/postgres"
	"knowbase/internal/pkg/search"
)

func TestBuildWhereClause_OwnerOnly(t *testing.T) {
	qb := pg.NewArticleQueryBuilder()

	clause, args := qb.BuildWhereClause("u1", search.Query{})

	assert.Equal(t, "WHERE owner_id = $1", clause)
	assert.Len(t, args, 1)
	assert.Equal(t, "u1", args[0])
}

func TestBuildWhereClause_Keyword(t *testing.T) {
	qb := pg.NewArticleQueryBuilder()

	clause, args := qb.BuildWhereClause("u1", search.Query{Keyword: "go"})

	assert.Equal(t, "WHERE owner_id = $1 AND (title ILIKE $2 OR body ILIKE $2)", clause)
	assert.Len(t, args, 2)
	assert.Equal(t, "%go%", args[1])
}

func TestBuildWhereClause_KeywordEscaped(t *testing.T) {
	qb := pg.NewArticleQueryBuilder()

	_, args := qb.BuildWhereClause("u1", search.Query{Keyword: "100%"})

	assert.Equal(t, `%100\%%`, args[1])
}

func TestBuildWhereClause_Tags(t *testing.T) {
	qb := pg.NewArticleQueryBuilder()

	clause, args := qb.BuildWhereClause("u1", search.Query{Tags: []string{"a", "b"}})

	assert.Equal(t, "WHERE owner_id = $1 AND tags @> $2", clause)
	assert.Len(t, args, 2)
}

func TestBuildWhereClause_KeywordAndTags(t *testing.T) {
	qb := pg.NewArticleQueryBuilder()

	clause, args := qb.BuildWhereClause("u1", search.Query{
		Keyword: "db",
		Tags:    []string{"ops"},
	})

	assert.Equal(t,
		"WHERE owner_id = $1 AND (title ILIKE $2 OR body ILIKE $2) AND tags @> $3",
		clause)
	assert.Len(t, args, 3)
}
