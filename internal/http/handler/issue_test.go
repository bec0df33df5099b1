package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"kra.app/feedback/internal/http/handler"
	"kra.app/feedback/internal/model"
	"kra.app/feedback/internal/service"
)

var _ = Describe("IssueHandler", func() {
	var (
		router *gin.Engine
		svc    *mockIssueService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockIssueService{}
		h := handler.NewIssueHandler(svc)

		rg := router.Group("/issues", asUser(&model.User{ID: 10, Role: model.RoleBusiness}))
		rg.GET("", h.List)
		rg.PATCH("/:id/status", h.UpdateStatus)
	})

	It("passes parsed filters to the service", func() {
		var got model.IssueFilter
		svc.listFn = func(_ context.Context, filter model.IssueFilter) ([]model.IssueSummary, error) {
			got = filter
			return nil, nil
		}

		req := httptest.NewRequest(http.MethodGet, "/issues?dashboard_id=3&status=in_progress", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(*got.DashboardID).To(Equal(int64(3)))
		Expect(got.ChartID).To(BeNil())
		Expect(*got.Status).To(Equal(model.IssueStatusInProgress))
	})

	It("rejects an unknown status filter", func() {
		req := httptest.NewRequest(http.MethodGet, "/issues?status=archived", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	Describe("PATCH /issues/:id/status", func() {
		patch := func(status string) *httptest.ResponseRecorder {
			body, _ := json.Marshal(map[string]string{"status": status})
			req := httptest.NewRequest(http.MethodPatch, "/issues/7/status", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			return w
		}

		It("returns the moved issue", func() {
			svc.updateStatusFn = func(_ context.Context, _ *model.User, issueID int64, status model.IssueStatus) (*model.Issue, error) {
				return &model.Issue{ID: issueID, Status: status}, nil
			}

			w := patch("complete")

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp map[string]map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["issue"]).To(HaveKeyWithValue("id", "7"))
			Expect(resp["issue"]).To(HaveKeyWithValue("status", "complete"))
		})

		It("maps ErrForbidden to 403", func() {
			svc.updateStatusFn = func(context.Context, *model.User, int64, model.IssueStatus) (*model.Issue, error) {
				return nil, service.ErrForbidden
			}

			Expect(patch("complete").Code).To(Equal(http.StatusForbidden))
		})

		It("rejects an unknown status before calling the service", func() {
			called := false
			svc.updateStatusFn = func(context.Context, *model.User, int64, model.IssueStatus) (*model.Issue, error) {
				called = true
				return nil, nil
			}

			Expect(patch("archived").Code).To(Equal(http.StatusBadRequest))
			Expect(called).To(BeFalse())
		})
	})
})
