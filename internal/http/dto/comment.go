package dto

import (
	"time"

	"kra.app/feedback/internal/model"
)

type CreateCommentRequest struct {
	IssueID       int64   `json:"issue_id,string"`
	CommentText   string  `json:"comment_text"`
	AttachmentURL *string `json:"attachment_url,omitempty" binding:"omitempty,url,max=2048"`
}

type UpdateCommentRequest struct {
	CommentText string `json:"comment_text"`
}

type CommentResponse struct {
	ID            int64      `json:"id,string"`
	IssueID       int64      `json:"issue_id,string"`
	UserID        int64      `json:"user_id,string"`
	CommentText   string     `json:"comment_text"`
	AttachmentURL *string    `json:"attachment_url,omitempty"`
	UserName      string     `json:"user_name,omitempty"`
	UserRole      model.Role `json:"user_role,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func ToCommentResponse(c *model.Comment) *CommentResponse {
	return &CommentResponse{
		ID:            c.ID,
		IssueID:       c.IssueID,
		UserID:        c.UserID,
		CommentText:   c.Text,
		AttachmentURL: c.AttachmentURL,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func ToCommentWithAuthorResponse(c *model.CommentWithAuthor) *CommentResponse {
	resp := ToCommentResponse(&c.Comment)
	resp.UserName = c.UserName
	resp.UserRole = c.UserRole
	return resp
}

func ToCommentResponses(comments []model.CommentWithAuthor) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		out = append(out, *ToCommentWithAuthorResponse(&comments[i]))
	}
	return out
}
