package postgres

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"

	"github.com/dimasprm/forum-comments/internal/domain"
	"github.com/dimasprm/forum-comments/internal/idgen"
)

func newCommentRepo(t *testing.T, newID idgen.Generator) (domain.CommentRepository, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return NewCommentRepository(&dbpg.DB{Master: mockDB}, newID), mock
}

func TestCreate_PersistsAndReturnsRow(t *testing.T) {
	repo, mock := newCommentRepo(t, func() string { return "abc123" })

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO comments (id, content, owner, thread_id, date, is_delete)")).
		WithArgs("comment-abc123", "some content", "user-1", "thread-1", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "content", "owner"}).
			AddRow("comment-abc123", "some content", "user-1"))

	payload, err := domain.NewCreateComment("some content", "user-1", "thread-1")
	require.NoError(t, err)

	created, err := repo.Create(context.Background(), payload)
	require.NoError(t, err)
	assert.Equal(t, "comment-abc123", created.ID)
	assert.Equal(t, "some content", created.Content)
	assert.Equal(t, "user-1", created.Owner)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_PropagatesStoreFailure(t *testing.T) {
	repo, mock := newCommentRepo(t, func() string { return "abc123" })

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO comments")).
		WillReturnError(sql.ErrConnDone)

	payload, err := domain.NewCreateComment("some content", "user-1", "thread-1")
	require.NoError(t, err)

	_, err = repo.Create(context.Background(), payload)
	assert.ErrorIs(t, err, sql.ErrConnDone)
}

func TestVerifyExists_Found(t *testing.T) {
	repo, mock := newCommentRepo(t, func() string { return "" })

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM comments WHERE id = $1")).
		WithArgs("comment-abc123").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("comment-abc123"))

	err := repo.VerifyExists(context.Background(), "comment-abc123")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerifyExists_NotFound(t *testing.T) {
	repo, mock := newCommentRepo(t, func() string { return "" })

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM comments WHERE id = $1")).
		WithArgs("comment-missing").
		WillReturnError(sql.ErrNoRows)

	err := repo.VerifyExists(context.Background(), "comment-missing")
	assert.ErrorIs(t, err, domain.ErrCommentNotFound)
}

func TestVerifyOwner(t *testing.T) {
	tests := []struct {
		name    string
		userID  string
		rows    *sqlmock.Rows
		rowsErr error
		wantErr error
	}{
		{
			name:   "owner matches",
			userID: "user-1",
			rows:   sqlmock.NewRows([]string{"owner"}).AddRow("user-1"),
		},
		{
			name:    "owner differs",
			userID:  "user-2",
			rows:    sqlmock.NewRows([]string{"owner"}).AddRow("user-1"),
			wantErr: domain.ErrCommentForbidden,
		},
		{
			name:    "comment missing",
			userID:  "user-1",
			rowsErr: sql.ErrNoRows,
			wantErr: domain.ErrCommentNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newCommentRepo(t, func() string { return "" })

			expect := mock.ExpectQuery(regexp.QuoteMeta("SELECT owner FROM comments WHERE id = $1")).
				WithArgs("comment-abc123")
			if tt.rowsErr != nil {
				expect.WillReturnError(tt.rowsErr)
			} else {
				expect.WillReturnRows(tt.rows)
			}

			err := repo.VerifyOwner(context.Background(), "comment-abc123", tt.userID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSoftDelete_FlipsFlag(t *testing.T) {
	repo, mock := newCommentRepo(t, func() string { return "" })

	mock.ExpectExec(regexp.QuoteMeta("UPDATE comments SET is_delete = TRUE WHERE id = $1")).
		WithArgs("comment-abc123").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SoftDelete(context.Background(), "comment-abc123")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSoftDelete_NotFound(t *testing.T) {
	repo, mock := newCommentRepo(t, func() string { return "" })

	mock.ExpectExec(regexp.QuoteMeta("UPDATE comments SET is_delete = TRUE WHERE id = $1")).
		WithArgs("comment-missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SoftDelete(context.Background(), "comment-missing")
	assert.ErrorIs(t, err, domain.ErrCommentNotFound)
}

// Deleting an already-deleted comment still matches the row by id, so the
// second call is a silent no-op rather than a not-found.
func TestSoftDelete_RepeatIsNoOp(t *testing.T) {
	repo, mock := newCommentRepo(t, func() string { return "" })

	mock.ExpectExec(regexp.QuoteMeta("UPDATE comments SET is_delete = TRUE WHERE id = $1")).
		WithArgs("comment-abc123").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE comments SET is_delete = TRUE WHERE id = $1")).
		WithArgs("comment-abc123").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SoftDelete(context.Background(), "comment-abc123"))
	assert.NoError(t, repo.SoftDelete(context.Background(), "comment-abc123"))
}

func TestListByThread_OrderedByDateAscending(t *testing.T) {
	repo, mock := newCommentRepo(t, func() string { return "" })

	dateA, err := time.Parse(time.RFC3339, "2022-12-29T07:44:10.275Z")
	require.NoError(t, err)
	dateB, err := time.Parse(time.RFC3339, "2022-12-29T07:44:03.301Z")
	require.NoError(t, err)

	// B was written after A but carries the earlier timestamp, so the
	// listing puts it first.
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY c.date ASC")).
		WithArgs("thread-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "date", "content", "is_delete"}).
			AddRow("comment-b", "johndoe", dateB, "second insert", false).
			AddRow("comment-a", "dicoding", dateA, "first insert", true))

	comments, err := repo.ListByThread(context.Background(), "thread-1")
	require.NoError(t, err)
	require.Len(t, comments, 2)

	assert.Equal(t, "comment-b", comments[0].ID)
	assert.Equal(t, "johndoe", comments[0].Username)
	assert.Equal(t, dateB, comments[0].Date)
	assert.False(t, comments[0].Deleted)

	assert.Equal(t, "comment-a", comments[1].ID)
	assert.True(t, comments[1].Deleted)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByThread_EmptyThread(t *testing.T) {
	repo, mock := newCommentRepo(t, func() string { return "" })

	mock.ExpectQuery(regexp.QuoteMeta("WHERE c.thread_id = $1")).
		WithArgs("thread-empty").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "date", "content", "is_delete"}))

	comments, err := repo.ListByThread(context.Background(), "thread-empty")
	require.NoError(t, err)
	assert.NotNil(t, comments)
	assert.Empty(t, comments)
}
