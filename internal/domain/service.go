package domain

import "context"

type CommentService interface {
	AddComment(ctx context.Context, threadID, owner, content string) (*CreatedComment, error)
	DeleteComment(ctx context.Context, threadID, commentID, userID string) error
	ListComments(ctx context.Context, threadID string) ([]ThreadComment, error)
}
