package middleware_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"kra.app/feedback/internal/auth"
	"kra.app/feedback/internal/http/middleware"
	"kra.app/feedback/internal/model"
	"kra.app/feedback/internal/service"
)

type mockAuthenticator struct {
	authenticateFn func(ctx context.Context, token string) (*model.User, error)
	calls          int
}

func (m *mockAuthenticator) Authenticate(ctx context.Context, token string) (*model.User, error) {
	m.calls++
	if m.authenticateFn != nil {
		return m.authenticateFn(ctx, token)
	}
	return nil, service.ErrUserNotFound
}

var _ = Describe("Auth middleware", func() {
	var (
		router        *gin.Engine
		authenticator *mockAuthenticator
		reached       bool
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		authenticator = &mockAuthenticator{}
		reached = false

		protected := router.Group("", middleware.Authenticate(authenticator))
		protected.GET("/me", func(c *gin.Context) {
			reached = true
			user := middleware.GetUser(c.Request.Context())
			c.JSON(http.StatusOK, gin.H{"id": user.ID})
		})
		protected.GET("/admin", middleware.Authorize(model.RoleAdmin), func(c *gin.Context) {
			reached = true
			c.Status(http.StatusNoContent)
		})
		protected.POST("/issues", middleware.Authorize(model.RoleBusiness, model.RoleDataScience), func(c *gin.Context) {
			reached = true
			c.Status(http.StatusCreated)
		})
		router.GET("/unguarded", middleware.Authorize(model.RoleAdmin), func(c *gin.Context) {
			reached = true
		})
	})

	request := func(method, path, header string) (int, string) {
		req := httptest.NewRequest(method, path, nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		msg, _ := resp["error"].(string)
		return w.Code, msg
	}

	loggedInAs := func(role model.Role) {
		authenticator.authenticateFn = func(_ context.Context, token string) (*model.User, error) {
			Expect(token).To(Equal("good-token"))
			return &model.User{ID: 10, Role: role}, nil
		}
	}

	Describe("Authenticate", func() {
		It("attaches the user for downstream handlers", func() {
			loggedInAs(model.RoleBusiness)

			code, _ := request(http.MethodGet, "/me", "Bearer good-token")

			Expect(code).To(Equal(http.StatusOK))
			Expect(reached).To(BeTrue())
		})

		It("rejects a request without an Authorization header", func() {
			code, msg := request(http.MethodGet, "/me", "")

			Expect(code).To(Equal(http.StatusUnauthorized))
			Expect(msg).To(Equal("No authorization header provided. Please log in again."))
			Expect(authenticator.calls).To(BeZero())
			Expect(reached).To(BeFalse())
		})

		It("rejects a header with no token", func() {
			code, msg := request(http.MethodGet, "/me", "Bearer   ")

			Expect(code).To(Equal(http.StatusUnauthorized))
			Expect(msg).To(Equal("No token provided. Please log in again."))
			Expect(authenticator.calls).To(BeZero())
		})

		DescribeTable("classifies authentication failures",
			func(err error, status int, msg string) {
				authenticator.authenticateFn = func(context.Context, string) (*model.User, error) {
					return nil, err
				}

				code, got := request(http.MethodGet, "/me", "Bearer some-token")

				Expect(code).To(Equal(status))
				Expect(got).To(Equal(msg))
				Expect(reached).To(BeFalse())
			},
			Entry("missing secret", auth.ErrSecretNotConfigured, http.StatusInternalServerError, "Server configuration error"),
			Entry("expired", auth.ErrTokenExpired, http.StatusUnauthorized, "Token expired. Please log in again."),
			Entry("malformed", auth.ErrTokenInvalid, http.StatusUnauthorized, "Invalid token. Please log in again."),
			Entry("bad signature", fmt.Errorf("%w: signature", auth.ErrTokenVerification), http.StatusUnauthorized, "Token verification failed. Please log in again."),
			Entry("deleted user", service.ErrUserNotFound, http.StatusUnauthorized, "User not found. Please log in again."),
			Entry("anything else", fmt.Errorf("db down"), http.StatusUnauthorized, "Authentication failed. Please log in again."),
		)
	})

	Describe("Authorize", func() {
		It("admits an allowed role", func() {
			loggedInAs(model.RoleAdmin)

			code, _ := request(http.MethodGet, "/admin", "Bearer good-token")

			Expect(code).To(Equal(http.StatusNoContent))
			Expect(reached).To(BeTrue())
		})

		It("admits any of several roles", func() {
			loggedInAs(model.RoleDataScience)

			code, _ := request(http.MethodPost, "/issues", "Bearer good-token")

			Expect(code).To(Equal(http.StatusCreated))
		})

		It("refuses other roles with 403", func() {
			loggedInAs(model.RoleBusiness)

			code, msg := request(http.MethodGet, "/admin", "Bearer good-token")

			Expect(code).To(Equal(http.StatusForbidden))
			Expect(msg).To(Equal("Insufficient permissions"))
			Expect(reached).To(BeFalse())
		})

		It("refuses admins where only business and data science may act", func() {
			loggedInAs(model.RoleAdmin)

			code, _ := request(http.MethodPost, "/issues", "Bearer good-token")

			Expect(code).To(Equal(http.StatusForbidden))
		})

		It("returns 401 when no user was authenticated", func() {
			code, msg := request(http.MethodGet, "/unguarded", "")

			Expect(code).To(Equal(http.StatusUnauthorized))
			Expect(msg).To(Equal("Authentication required"))
			Expect(reached).To(BeFalse())
		})
	})
})

var _ = Describe("Recovery", func() {
	It("turns a panic into a 500 with the generic message", func() {
		gin.SetMode(gin.TestMode)
		router := gin.New()
		router.Use(middleware.Recovery())
		router.GET("/boom", func(*gin.Context) { panic("boom") })

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
		Expect(w.Body.String()).To(MatchJSON(`{"error":"Server error"}`))
	})
})
