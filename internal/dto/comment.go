package dto

import "time"

type CreateCommentRequest struct {
	Content string `json:"content"`
}

type CreatedCommentResponse struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

type ThreadCommentResponse struct {
	ID       string    `json:"id"`
	Username string    `json:"username"`
	Date     time.Time `json:"date"`
	Content  string    `json:"content"`
	Deleted  bool      `json:"deleted"`
}
