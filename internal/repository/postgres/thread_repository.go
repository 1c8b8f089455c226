package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/wb-go/wbf/dbpg"

	"github.com/dimasprm/forum-comments/internal/domain"
)

type threadRepository struct {
	db *dbpg.DB
}

func NewThreadRepository(db *dbpg.DB) domain.ThreadRepository {
	return &threadRepository{db: db}
}

func (r *threadRepository) VerifyExists(ctx context.Context, threadID string) error {
	query := `SELECT id FROM threads WHERE id = $1`

	var id string
	err := r.db.Master.QueryRowContext(ctx, query, threadID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrThreadNotFound
	}
	return err
}
