package usecase

import (
	"context"

	"github.com/dimasprm/forum-comments/internal/domain"
)

type commentUsecase struct {
	comments domain.CommentRepository
	threads  domain.ThreadRepository
}

func NewCommentUsecase(comments domain.CommentRepository, threads domain.ThreadRepository) domain.CommentService {
	return &commentUsecase{comments: comments, threads: threads}
}

func (uc *commentUsecase) AddComment(ctx context.Context, threadID, owner, content string) (*domain.CreatedComment, error) {
	if err := uc.threads.VerifyExists(ctx, threadID); err != nil {
		return nil, err
	}

	payload, err := domain.NewCreateComment(content, owner, threadID)
	if err != nil {
		return nil, err
	}

	return uc.comments.Create(ctx, payload)
}

// DeleteComment checks existence before ownership so a missing comment is
// reported as not-found rather than forbidden.
func (uc *commentUsecase) DeleteComment(ctx context.Context, threadID, commentID, userID string) error {
	if err := uc.threads.VerifyExists(ctx, threadID); err != nil {
		return err
	}
	if err := uc.comments.VerifyExists(ctx, commentID); err != nil {
		return err
	}
	if err := uc.comments.VerifyOwner(ctx, commentID, userID); err != nil {
		return err
	}
	return uc.comments.SoftDelete(ctx, commentID)
}

func (uc *commentUsecase) ListComments(ctx context.Context, threadID string) ([]domain.ThreadComment, error) {
	if err := uc.threads.VerifyExists(ctx, threadID); err != nil {
		return nil, err
	}
	return uc.comments.ListByThread(ctx, threadID)
}
