package service_test

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"kra.app/feedback/common/id"
	"kra.app/feedback/internal/auth"
	"kra.app/feedback/internal/model"
	"kra.app/feedback/internal/service"
	"kra.app/feedback/internal/store"
)

var _ = Describe("AuthService", func() {
	var (
		svc    service.AuthService
		users  *mockUserStore
		teams  *mockTeamStore
		tokens *auth.TokenManager
		ctx    context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		Expect(id.Init(1)).To(Succeed())
		users = &mockUserStore{}
		teams = &mockTeamStore{}
		tokens = auth.NewTokenManager("test-secret", time.Hour)
		svc = service.NewAuthService(users, teams, tokens)
	})

	Describe("Register", func() {
		params := func() service.RegisterParams {
			return service.RegisterParams{
				Name:     "Bea",
				Email:    "bea@example.com",
				Password: "correct-horse",
				Role:     "business",
			}
		}

		It("creates the user with a hashed password and returns a token for them", func() {
			var saved *model.User
			users.createFn = func(_ context.Context, u *model.User) error {
				saved = u
				return nil
			}

			user, token, err := svc.Register(ctx, params())

			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).NotTo(BeZero())
			Expect(saved.PasswordHash).NotTo(Equal("correct-horse"))
			Expect(auth.CheckPassword(saved.PasswordHash, "correct-horse")).To(BeTrue())

			claims, err := tokens.Verify(token)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims.UserID).To(Equal(user.ID))
			Expect(claims.Role).To(Equal(model.RoleBusiness))
		})

		It("refuses admin as a signup role", func() {
			p := params()
			p.Role = "admin"

			_, _, err := svc.Register(ctx, p)

			var verr *service.ValidationError
			Expect(errors.As(err, &verr)).To(BeTrue())
			Expect(users.createCalls).To(BeZero())
		})

		It("refuses unknown roles", func() {
			p := params()
			p.Role = "superuser"

			_, _, err := svc.Register(ctx, p)

			var verr *service.ValidationError
			Expect(errors.As(err, &verr)).To(BeTrue())
		})

		It("refuses short passwords", func() {
			p := params()
			p.Password = "short"

			_, _, err := svc.Register(ctx, p)

			var verr *service.ValidationError
			Expect(errors.As(err, &verr)).To(BeTrue())
			Expect(verr.Msg).To(ContainSubstring("at least 8"))
		})

		It("returns ErrEmailTaken when the email exists", func() {
			users.getByEmailFn = func(_ context.Context, _ string) (*model.User, error) {
				return &model.User{ID: 1}, nil
			}

			_, _, err := svc.Register(ctx, params())

			Expect(err).To(MatchError(service.ErrEmailTaken))
			Expect(users.createCalls).To(BeZero())
		})

		It("maps a unique violation on insert to ErrEmailTaken", func() {
			users.createFn = func(_ context.Context, _ *model.User) error {
				return &pgconn.PgError{Code: "23505"}
			}

			_, _, err := svc.Register(ctx, params())

			Expect(err).To(MatchError(service.ErrEmailTaken))
		})

		It("returns ErrTeamNotFound for an unknown team", func() {
			teams.getByIDFn = func(_ context.Context, _ int64) (*model.Team, error) {
				return nil, store.ErrNotFound
			}
			p := params()
			p.TeamID = int64Ptr(404)

			_, _, err := svc.Register(ctx, p)

			Expect(err).To(MatchError(service.ErrTeamNotFound))
		})
	})

	Describe("Login", func() {
		BeforeEach(func() {
			hash, err := auth.HashPassword("correct-horse")
			Expect(err).NotTo(HaveOccurred())
			users.getByEmailFn = func(_ context.Context, email string) (*model.User, error) {
				if email != "bea@example.com" {
					return nil, store.ErrNotFound
				}
				return &model.User{ID: 10, Email: email, PasswordHash: hash, Role: model.RoleBusiness}, nil
			}
		})

		It("returns a token for valid credentials", func() {
			user, token, err := svc.Login(ctx, "bea@example.com", "correct-horse")

			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).To(Equal(int64(10)))
			Expect(token).NotTo(BeEmpty())
		})

		It("does not distinguish a wrong password from an unknown email", func() {
			_, _, err := svc.Login(ctx, "bea@example.com", "wrong-password")
			Expect(err).To(MatchError(service.ErrInvalidCredentials))

			_, _, err = svc.Login(ctx, "nobody@example.com", "correct-horse")
			Expect(err).To(MatchError(service.ErrInvalidCredentials))
		})
	})

	Describe("Authenticate", func() {
		It("resolves the token subject to the stored user", func() {
			token, _, err := tokens.Issue(&model.User{ID: 10, Role: model.RoleBusiness})
			Expect(err).NotTo(HaveOccurred())
			users.getByIDFn = func(_ context.Context, id int64) (*model.User, error) {
				return &model.User{ID: id, Name: "Bea", Role: model.RoleBusiness}, nil
			}

			user, err := svc.Authenticate(ctx, token)

			Expect(err).NotTo(HaveOccurred())
			Expect(user.Name).To(Equal("Bea"))
		})

		It("returns ErrUserNotFound when the subject has no row", func() {
			token, _, err := tokens.Issue(&model.User{ID: 10, Role: model.RoleBusiness})
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.Authenticate(ctx, token)

			Expect(err).To(MatchError(service.ErrUserNotFound))
		})

		It("passes token errors through", func() {
			_, err := svc.Authenticate(ctx, "not-a-jwt")
			Expect(err).To(MatchError(auth.ErrTokenInvalid))
		})

		It("reports a missing secret", func() {
			svc = service.NewAuthService(users, teams, auth.NewTokenManager("", time.Hour))

			_, err := svc.Authenticate(ctx, "anything")

			Expect(err).To(MatchError(auth.ErrSecretNotConfigured))
		})
	})
})
