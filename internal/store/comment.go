package store

import (
	"context"

	"kra.app/feedback/core/db/sqlc"
	"kra.app/feedback/internal/model"
)

type commentStore struct {
	queries *sqlc.Queries
}

func newCommentStore(queries *sqlc.Queries) CommentStore {
	return &commentStore{queries: queries}
}

func (s *commentStore) GetByID(ctx context.Context, id int64) (*model.Comment, error) {
	row, err := s.queries.GetComment(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return toCommentModel(row), nil
}

func (s *commentStore) Create(ctx context.Context, comment *model.Comment) error {
	row, err := s.queries.CreateComment(ctx, sqlc.CreateCommentParams{
		ID:            comment.ID,
		IssueID:       comment.IssueID,
		UserID:        comment.UserID,
		CommentText:   comment.Text,
		AttachmentUrl: comment.AttachmentURL,
	})
	if err != nil {
		return err
	}
	*comment = *toCommentModel(row)
	return nil
}

// ListByIssue returns comments oldest first; ties on created_at fall back to the time-ordered id.
func (s *commentStore) ListByIssue(ctx context.Context, issueID int64) ([]model.CommentWithAuthor, error) {
	rows, err := s.queries.ListCommentsByIssue(ctx, issueID)
	if err != nil {
		return nil, err
	}

	comments := make([]model.CommentWithAuthor, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, model.CommentWithAuthor{
			Comment: model.Comment{
				ID:            row.ID,
				IssueID:       row.IssueID,
				UserID:        row.UserID,
				Text:          row.CommentText,
				AttachmentURL: row.AttachmentUrl,
				CreatedAt:     row.CreatedAt.Time,
				UpdatedAt:     row.UpdatedAt.Time,
			},
			UserName: row.UserName,
			UserRole: model.Role(row.UserRole),
		})
	}
	return comments, nil
}

func (s *commentStore) UpdateText(ctx context.Context, id int64, text string) (*model.Comment, error) {
	row, err := s.queries.UpdateCommentText(ctx, sqlc.UpdateCommentTextParams{
		ID:          id,
		CommentText: text,
	})
	if err != nil {
		return nil, notFound(err)
	}
	return toCommentModel(row), nil
}

func (s *commentStore) Delete(ctx context.Context, id int64) error {
	return affected(s.queries.DeleteComment(ctx, id))
}

func toCommentModel(row sqlc.Comment) *model.Comment {
	return &model.Comment{
		ID:            row.ID,
		IssueID:       row.IssueID,
		UserID:        row.UserID,
		Text:          row.CommentText,
		AttachmentURL: row.AttachmentUrl,
		CreatedAt:     row.CreatedAt.Time,
		UpdatedAt:     row.UpdatedAt.Time,
	}
}
