package domain

import "errors"

var (
	// ErrInvalidComment is returned by the entity constructors when a
	// required field is missing or blank.
	ErrInvalidComment = errors.New("comment payload is incomplete")

	// ErrCommentNotFound is returned when no comment matches the given id,
	// soft-deleted rows included.
	ErrCommentNotFound = errors.New("comment not found")

	// ErrCommentForbidden is returned when the comment exists but belongs
	// to a different user.
	ErrCommentForbidden = errors.New("user is not the comment owner")

	// ErrThreadNotFound is returned when the parent thread does not exist.
	ErrThreadNotFound = errors.New("thread not found")
)
