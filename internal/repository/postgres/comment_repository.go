package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/zlog"

	"github.com/dimasprm/forum-comments/internal/domain"
	"github.com/dimasprm/forum-comments/internal/idgen"
)

type commentRepository struct {
	db    *dbpg.DB
	newID idgen.Generator
}

func NewCommentRepository(db *dbpg.DB, newID idgen.Generator) domain.CommentRepository {
	return &commentRepository{db: db, newID: newID}
}

func (r *commentRepository) Create(ctx context.Context, payload *domain.CreateComment) (*domain.CreatedComment, error) {
	query := `
		INSERT INTO comments (id, content, owner, thread_id, date, is_delete)
		VALUES ($1, $2, $3, $4, $5, FALSE)
		RETURNING id, content, owner
	`

	id := "comment-" + r.newID()

	// The result is scanned back from RETURNING so the caller sees the
	// persisted row, not an echo of the input.
	created := &domain.CreatedComment{}
	err := r.db.Master.QueryRowContext(ctx, query,
		id,
		payload.Content,
		payload.Owner,
		payload.ThreadID,
		time.Now().UTC(),
	).Scan(&created.ID, &created.Content, &created.Owner)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("thread_id", payload.ThreadID).Msg("insert comment failed")
		return nil, err
	}

	return created, nil
}

func (r *commentRepository) VerifyExists(ctx context.Context, commentID string) error {
	query := `SELECT id FROM comments WHERE id = $1`

	var id string
	err := r.db.Master.QueryRowContext(ctx, query, commentID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrCommentNotFound
	}
	return err
}

func (r *commentRepository) VerifyOwner(ctx context.Context, commentID, userID string) error {
	query := `SELECT owner FROM comments WHERE id = $1`

	var owner string
	err := r.db.Master.QueryRowContext(ctx, query, commentID).Scan(&owner)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrCommentNotFound
	}
	if err != nil {
		return err
	}

	if owner != userID {
		return domain.ErrCommentForbidden
	}
	return nil
}

// SoftDelete flips the is_delete flag. The predicate matches by id only, so
// deleting an already-deleted comment still affects one row and succeeds
// silently; that idempotence is deliberate.
func (r *commentRepository) SoftDelete(ctx context.Context, commentID string) error {
	query := `UPDATE comments SET is_delete = TRUE WHERE id = $1`

	res, err := r.db.Master.ExecContext(ctx, query, commentID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

func (r *commentRepository) ListByThread(ctx context.Context, threadID string) ([]domain.ThreadComment, error) {
	query := `
		SELECT c.id, u.username, c.date, c.content, c.is_delete
		FROM comments c
		JOIN users u ON u.id = c.owner
		WHERE c.thread_id = $1
		ORDER BY c.date ASC
	`

	rows, err := r.db.Master.QueryContext(ctx, query, threadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := make([]domain.ThreadComment, 0)
	for rows.Next() {
		var c domain.ThreadComment
		if err := rows.Scan(&c.ID, &c.Username, &c.Date, &c.Content, &c.Deleted); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}

	return comments, rows.Err()
}
