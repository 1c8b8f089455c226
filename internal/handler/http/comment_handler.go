package http

import (
	"errors"
	"net/http"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/dimasprm/forum-comments/internal/domain"
	"github.com/dimasprm/forum-comments/internal/dto"
)

// deletedContentMask replaces the content of soft-deleted comments in thread
// listings. The stored content stays untouched.
const deletedContentMask = "**comment has been deleted**"

// CommentHandler обрабатывает HTTP-запросы по комментариям треда.
type CommentHandler struct {
	service domain.CommentService
}

func NewCommentHandler(service domain.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

// RegisterRoutes регистрирует маршруты комментариев в Engine.
func (h *CommentHandler) RegisterRoutes(engine *ginext.Engine) {
	group := engine.Group("/threads/:thread_id/comments")
	group.POST("", h.PostComment)
	group.GET("", h.GetComments)
	group.DELETE("/:comment_id", h.DeleteComment)
}

// PostComment POST /threads/:thread_id/comments
func (h *CommentHandler) PostComment(c *ginext.Context) {
	userID := c.GetHeader("X-User-Id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, ginext.H{"error": "missing user identity"})
		return
	}

	var req dto.CreateCommentRequest
	if err := c.BindJSON(&req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("invalid request body")
		c.JSON(http.StatusBadRequest, ginext.H{"error": "invalid request"})
		return
	}

	created, err := h.service.AddComment(c.Request.Context(), c.Param("thread_id"), userID, req.Content)
	if err != nil {
		writeError(c, err, "AddComment failed")
		return
	}

	c.JSON(http.StatusCreated, dto.CreatedCommentResponse{
		ID:      created.ID,
		Content: created.Content,
		Owner:   created.Owner,
	})
}

// GetComments GET /threads/:thread_id/comments
func (h *CommentHandler) GetComments(c *ginext.Context) {
	comments, err := h.service.ListComments(c.Request.Context(), c.Param("thread_id"))
	if err != nil {
		writeError(c, err, "ListComments failed")
		return
	}

	c.JSON(http.StatusOK, mapToCommentResponses(comments))
}

// DeleteComment DELETE /threads/:thread_id/comments/:comment_id
func (h *CommentHandler) DeleteComment(c *ginext.Context) {
	userID := c.GetHeader("X-User-Id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, ginext.H{"error": "missing user identity"})
		return
	}

	err := h.service.DeleteComment(c.Request.Context(), c.Param("thread_id"), c.Param("comment_id"), userID)
	if err != nil {
		writeError(c, err, "DeleteComment failed")
		return
	}

	c.Status(http.StatusNoContent)
}

func writeError(c *ginext.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, domain.ErrInvalidComment):
		c.JSON(http.StatusBadRequest, ginext.H{"error": err.Error()})
	case errors.Is(err, domain.ErrThreadNotFound), errors.Is(err, domain.ErrCommentNotFound):
		c.JSON(http.StatusNotFound, ginext.H{"error": err.Error()})
	case errors.Is(err, domain.ErrCommentForbidden):
		c.JSON(http.StatusForbidden, ginext.H{"error": err.Error()})
	default:
		zlog.Logger.Error().Err(err).Msg(logMsg)
		c.JSON(http.StatusInternalServerError, ginext.H{"error": "internal error"})
	}
}

func mapToCommentResponses(comments []domain.ThreadComment) []dto.ThreadCommentResponse {
	out := make([]dto.ThreadCommentResponse, 0, len(comments))
	for _, c := range comments {
		resp := dto.ThreadCommentResponse{
			ID:       c.ID,
			Username: c.Username,
			Date:     c.Date,
			Content:  c.Content,
			Deleted:  c.Deleted,
		}
		if c.Deleted {
			resp.Content = deletedContentMask
		}
		out = append(out, resp)
	}
	return out
}
