package model

import "time"

type Comment struct {
	ID            int64     `json:"id,string"`
	IssueID       int64     `json:"issue_id,string"`
	UserID        int64     `json:"user_id,string"`
	Text          string    `json:"comment_text"`
	AttachmentURL *string   `json:"attachment_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CommentWithAuthor is a comment plus the author's display name and role.
type CommentWithAuthor struct {
	Comment
	UserName string `json:"user_name"`
	UserRole Role   `json:"user_role"`
}
