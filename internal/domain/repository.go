package domain

import "context"

// CommentRepository persists and reads comments. All methods issue a single
// statement against the store; domain errors cover the not-found and
// ownership cases, anything else propagates as a store failure.
type CommentRepository interface {
	Create(ctx context.Context, payload *CreateComment) (*CreatedComment, error)
	VerifyExists(ctx context.Context, commentID string) error
	VerifyOwner(ctx context.Context, commentID, userID string) error
	SoftDelete(ctx context.Context, commentID string) error
	ListByThread(ctx context.Context, threadID string) ([]ThreadComment, error)
}

// ThreadRepository is the existence gate for parent threads.
type ThreadRepository interface {
	VerifyExists(ctx context.Context, threadID string) error
}
