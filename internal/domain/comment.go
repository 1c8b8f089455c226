package domain

import (
	"strings"
	"time"
)

// CreateComment is the validated payload for persisting a new comment.
// Construct it through NewCreateComment so an incomplete payload never
// reaches the repository.
type CreateComment struct {
	Content  string
	Owner    string
	ThreadID string
}

func NewCreateComment(content, owner, threadID string) (*CreateComment, error) {
	if strings.TrimSpace(content) == "" ||
		strings.TrimSpace(owner) == "" ||
		strings.TrimSpace(threadID) == "" {
		return nil, ErrInvalidComment
	}

	return &CreateComment{
		Content:  content,
		Owner:    owner,
		ThreadID: threadID,
	}, nil
}

// CreatedComment mirrors the persisted row after a successful insert.
type CreatedComment struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

func NewCreatedComment(id, content, owner string) (*CreatedComment, error) {
	if strings.TrimSpace(id) == "" ||
		strings.TrimSpace(content) == "" ||
		strings.TrimSpace(owner) == "" {
		return nil, ErrInvalidComment
	}

	return &CreatedComment{
		ID:      id,
		Content: content,
		Owner:   owner,
	}, nil
}

// ThreadComment is a single row of a thread listing, with the author's
// username already resolved.
type ThreadComment struct {
	ID       string    `json:"id"`
	Username string    `json:"username"`
	Date     time.Time `json:"date"`
	Content  string    `json:"content"`
	Deleted  bool      `json:"deleted"`
}
