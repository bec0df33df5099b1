package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"kra.app/feedback/internal/http/handler"
	"kra.app/feedback/internal/model"
	"kra.app/feedback/internal/service"
)

var _ = Describe("CommentHandler", func() {
	var (
		router *gin.Engine
		svc    *mockCommentService
		caller *model.User
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockCommentService{}
		caller = &model.User{ID: 20, Name: "Dee", Role: model.RoleDataScience}
		h := handler.NewCommentHandler(svc)

		rg := router.Group("/comments", asUser(caller))
		rg.GET("/issue/:issueId", h.ListByIssue)
		rg.POST("", h.Create)
		rg.PUT("/:id", h.Update)
		rg.DELETE("/:id", h.Delete)
	})

	send := func(method, path string, body any) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		if body != nil {
			Expect(json.NewEncoder(&buf).Encode(body)).To(Succeed())
		}
		req := httptest.NewRequest(method, path, &buf)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	decode := func(w *httptest.ResponseRecorder) map[string]any {
		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		return resp
	}

	Describe("POST /comments", func() {
		It("returns 201 with the comment and its author", func() {
			var got service.CreateCommentParams
			svc.createFn = func(_ context.Context, user *model.User, params service.CreateCommentParams) (*service.CommentResult, error) {
				Expect(user).To(Equal(caller))
				got = params
				return &service.CommentResult{
					Comment: &model.CommentWithAuthor{
						Comment: model.Comment{
							ID:        1900000000000000001,
							IssueID:   params.IssueID,
							UserID:    user.ID,
							Text:      params.Text,
							CreatedAt: time.Now(),
						},
						UserName: user.Name,
						UserRole: user.Role,
					},
					StatusChanged: true,
				}, nil
			}

			w := send(http.MethodPost, "/comments", map[string]any{
				"issue_id":     "42",
				"comment_text": "Looking into it",
			})

			Expect(w.Code).To(Equal(http.StatusCreated))
			Expect(got.IssueID).To(Equal(int64(42)))
			Expect(got.Text).To(Equal("Looking into it"))

			comment := decode(w)["comment"].(map[string]any)
			Expect(comment["id"]).To(Equal("1900000000000000001"))
			Expect(comment["comment_text"]).To(Equal("Looking into it"))
			Expect(comment["user_name"]).To(Equal("Dee"))
			Expect(comment["user_role"]).To(Equal("data_science"))
		})

		It("reports validation failures as 400 with the message", func() {
			svc.createFn = func(context.Context, *model.User, service.CreateCommentParams) (*service.CommentResult, error) {
				return nil, &service.ValidationError{Msg: "Issue ID and comment text are required"}
			}

			w := send(http.MethodPost, "/comments", map[string]any{"issue_id": "42"})

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(decode(w)["error"]).To(Equal("Issue ID and comment text are required"))
		})

		DescribeTable("maps service errors",
			func(err error, status int, msg string) {
				svc.createFn = func(context.Context, *model.User, service.CreateCommentParams) (*service.CommentResult, error) {
					return nil, err
				}

				w := send(http.MethodPost, "/comments", map[string]any{"issue_id": "42", "comment_text": "hi"})

				Expect(w.Code).To(Equal(status))
				Expect(decode(w)["error"]).To(Equal(msg))
			},
			Entry("missing issue", service.ErrIssueNotFound, http.StatusNotFound, "Issue not found"),
			Entry("closed thread", service.ErrThreadClosed, http.StatusForbidden, "Cannot add comments to completed threads"),
			Entry("unknown role", model.ErrUnknownRole, http.StatusBadRequest, "Invalid role. Valid roles: business, data_science, admin"),
			Entry("anything else", errors.New("connection reset"), http.StatusInternalServerError, "Server error"),
		)

		It("rejects a numeric issue id that is not a string", func() {
			w := send(http.MethodPost, "/comments", map[string]any{"issue_id": 42, "comment_text": "hi"})
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("GET /comments/issue/:issueId", func() {
		It("wraps the thread in a comments key", func() {
			svc.listByIssueFn = func(_ context.Context, issueID int64) ([]model.CommentWithAuthor, error) {
				Expect(issueID).To(Equal(int64(42)))
				return []model.CommentWithAuthor{
					{Comment: model.Comment{ID: 1, IssueID: 42, Text: "first"}},
					{Comment: model.Comment{ID: 2, IssueID: 42, Text: "second"}},
				}, nil
			}

			w := send(http.MethodGet, "/comments/issue/42", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decode(w)["comments"]).To(HaveLen(2))
		})

		It("returns an empty list rather than null", func() {
			svc.listByIssueFn = func(context.Context, int64) ([]model.CommentWithAuthor, error) {
				return nil, nil
			}

			w := send(http.MethodGet, "/comments/issue/42", nil)

			Expect(w.Body.String()).To(MatchJSON(`{"comments":[]}`))
		})

		It("rejects a malformed issue id", func() {
			w := send(http.MethodGet, "/comments/issue/abc", nil)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("PUT /comments/:id", func() {
		It("tells non-authors they can only edit their own comments", func() {
			svc.updateFn = func(context.Context, *model.User, int64, string) (*model.Comment, error) {
				return nil, service.ErrNotCommentAuthor
			}

			w := send(http.MethodPut, "/comments/5", map[string]any{"comment_text": "edited"})

			Expect(w.Code).To(Equal(http.StatusForbidden))
			Expect(decode(w)["error"]).To(Equal("You can only edit your own comments"))
		})

		It("returns the updated comment", func() {
			svc.updateFn = func(_ context.Context, _ *model.User, commentID int64, text string) (*model.Comment, error) {
				return &model.Comment{ID: commentID, UserID: caller.ID, Text: text}, nil
			}

			w := send(http.MethodPut, "/comments/5", map[string]any{"comment_text": "edited"})

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decode(w)["comment"]).To(HaveKeyWithValue("comment_text", "edited"))
		})
	})

	Describe("DELETE /comments/:id", func() {
		It("confirms the deletion", func() {
			w := send(http.MethodDelete, "/comments/5", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decode(w)["message"]).To(Equal("Comment deleted successfully"))
		})

		It("returns 404 for a missing comment", func() {
			svc.deleteFn = func(context.Context, *model.User, int64) error {
				return service.ErrCommentNotFound
			}

			w := send(http.MethodDelete, "/comments/5", nil)

			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(decode(w)["error"]).To(Equal("Comment not found"))
		})

		It("tells non-authors they can only delete their own comments", func() {
			svc.deleteFn = func(context.Context, *model.User, int64) error {
				return service.ErrNotCommentAuthor
			}

			w := send(http.MethodDelete, "/comments/5", nil)

			Expect(w.Code).To(Equal(http.StatusForbidden))
			Expect(decode(w)["error"]).To(Equal("You can only delete your own comments"))
		})
	})
})
