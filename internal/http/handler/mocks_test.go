package handler_test

import (
	"context"
	"io"

	"github.com/gin-gonic/gin"

	"kra.app/feedback/internal/http/middleware"
	"kra.app/feedback/internal/model"
	"kra.app/feedback/internal/service"
)

type mockCommentService struct {
	createFn      func(ctx context.Context, caller *model.User, params service.CreateCommentParams) (*service.CommentResult, error)
	listByIssueFn func(ctx context.Context, issueID int64) ([]model.CommentWithAuthor, error)
	updateFn      func(ctx context.Context, caller *model.User, commentID int64, text string) (*model.Comment, error)
	deleteFn      func(ctx context.Context, caller *model.User, commentID int64) error
}

func (m *mockCommentService) Create(ctx context.Context, caller *model.User, params service.CreateCommentParams) (*service.CommentResult, error) {
	if m.createFn != nil {
		return m.createFn(ctx, caller, params)
	}
	return nil, nil
}

func (m *mockCommentService) ListByIssue(ctx context.Context, issueID int64) ([]model.CommentWithAuthor, error) {
	if m.listByIssueFn != nil {
		return m.listByIssueFn(ctx, issueID)
	}
	return []model.CommentWithAuthor{}, nil
}

func (m *mockCommentService) Update(ctx context.Context, caller *model.User, commentID int64, text string) (*model.Comment, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, caller, commentID, text)
	}
	return nil, nil
}

func (m *mockCommentService) Delete(ctx context.Context, caller *model.User, commentID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, caller, commentID)
	}
	return nil
}

type mockIssueService struct {
	createFn       func(ctx context.Context, caller *model.User, params service.CreateIssueParams) (*model.Issue, error)
	getFn          func(ctx context.Context, issueID int64) (*model.Issue, error)
	listFn         func(ctx context.Context, filter model.IssueFilter) ([]model.IssueSummary, error)
	updateStatusFn func(ctx context.Context, caller *model.User, issueID int64, status model.IssueStatus) (*model.Issue, error)
	deleteFn       func(ctx context.Context, caller *model.User, issueID int64) error
}

func (m *mockIssueService) Create(ctx context.Context, caller *model.User, params service.CreateIssueParams) (*model.Issue, error) {
	if m.createFn != nil {
		return m.createFn(ctx, caller, params)
	}
	return nil, nil
}

func (m *mockIssueService) Get(ctx context.Context, issueID int64) (*model.Issue, error) {
	if m.getFn != nil {
		return m.getFn(ctx, issueID)
	}
	return nil, service.ErrIssueNotFound
}

func (m *mockIssueService) List(ctx context.Context, filter model.IssueFilter) ([]model.IssueSummary, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return []model.IssueSummary{}, nil
}

func (m *mockIssueService) UpdateStatus(ctx context.Context, caller *model.User, issueID int64, status model.IssueStatus) (*model.Issue, error) {
	if m.updateStatusFn != nil {
		return m.updateStatusFn(ctx, caller, issueID, status)
	}
	return nil, nil
}

func (m *mockIssueService) Delete(ctx context.Context, caller *model.User, issueID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, caller, issueID)
	}
	return nil
}

type mockAuthService struct {
	registerFn     func(ctx context.Context, params service.RegisterParams) (*model.User, string, error)
	loginFn        func(ctx context.Context, email, password string) (*model.User, string, error)
	authenticateFn func(ctx context.Context, token string) (*model.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, params service.RegisterParams) (*model.User, string, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, params)
	}
	return nil, "", nil
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, email, password)
	}
	return nil, "", service.ErrInvalidCredentials
}

func (m *mockAuthService) Authenticate(ctx context.Context, token string) (*model.User, error) {
	if m.authenticateFn != nil {
		return m.authenticateFn(ctx, token)
	}
	return nil, service.ErrUserNotFound
}

type mockAttachmentService struct {
	uploadFn func(ctx context.Context, caller *model.User, filename, contentType string, size int64, r io.Reader) (string, error)
}

func (m *mockAttachmentService) Upload(ctx context.Context, caller *model.User, filename, contentType string, size int64, r io.Reader) (string, error) {
	if m.uploadFn != nil {
		return m.uploadFn(ctx, caller, filename, contentType, size, r)
	}
	return "", service.ErrStorageDisabled
}

// asUser stands in for the auth middleware.
func asUser(user *model.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(middleware.WithUser(c.Request.Context(), user))
		c.Next()
	}
}
