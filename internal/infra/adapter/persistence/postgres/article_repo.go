package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"knowbase/internal/domain/entity"
	"knowbase/internal/pkg/search"
	"knowbase/internal/repository"
)

// DB is the subset of database/sql used by the repository. Both *sql.DB
// and the circuit-breaker wrapper satisfy it.
type DB interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type ArticleRepo struct {
	db           DB
	queryBuilder *ArticleQueryBuilder
}

func NewArticleRepo(db DB) repository.ArticleRepository {
	return &ArticleRepo{
		db:           db,
		queryBuilder: NewArticleQueryBuilder(),
	}
}

func (repo *ArticleRepo) GetByID(ctx context.Context, id string, owner *string) (*entity.Article, error) {
	query := `
SELECT id, owner_id, title, body, tags, created_at
FROM articles
WHERE id = $1`
	args := []interface{}{id}
	if owner != nil {
		query += " AND owner_id = $2"
		args = append(args, *owner)
	}
	query += " LIMIT 1"

	var article entity.Article
	err := repo.db.QueryRowContext(ctx, query, args...).
		Scan(&article.ID, &article.OwnerID, &article.Title, &article.Body,
			pq.Array(&article.Tags), &article.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetByID: %w", err)
	}
	return &article, nil
}

func (repo *ArticleRepo) ListByOwner(ctx context.Context, ownerID string, q search.Query) ([]*entity.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, search.DefaultSearchTimeout)
	defer cancel()

	whereClause, args := repo.queryBuilder.BuildWhereClause(ownerID, q)

	// created_at DESC with id as tie-break keeps the ordering deterministic
	// for articles created in the same instant.
	query := fmt.Sprintf(`
SELECT id, owner_id, title, body, tags, created_at
FROM articles
%s
ORDER BY created_at DESC, id DESC`, whereClause)

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListByOwner: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, 50)
	for rows.Next() {
		var article entity.Article
		if err := rows.Scan(&article.ID, &article.OwnerID, &article.Title,
			&article.Body, pq.Array(&article.Tags), &article.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListByOwner: Scan: %w", err)
		}
		articles = append(articles, &article)
	}
	return articles, rows.Err()
}

func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	const query = `
INSERT INTO articles
	   (id, owner_id, title, body, tags, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := repo.db.ExecContext(ctx, query,
		article.ID, article.OwnerID, article.Title,
		article.Body, pq.Array(article.Tags), article.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM articles WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: no rows affected")
	}
	return nil
}
