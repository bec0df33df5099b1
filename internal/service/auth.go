package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"kra.app/feedback/common/id"
	"kra.app/feedback/internal/auth"
	"kra.app/feedback/internal/model"
	"kra.app/feedback/internal/store"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrTeamNotFound       = errors.New("team not found")
)

type RegisterParams struct {
	Name     string
	Email    string
	Password string
	Role     string
	TeamID   *int64
}

type AuthService interface {
	Register(ctx context.Context, params RegisterParams) (*model.User, string, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	// Authenticate resolves a bearer token to its user. Token failures are the
	// auth package's sentinels; a subject without a row is ErrUserNotFound.
	Authenticate(ctx context.Context, token string) (*model.User, error)
}

type authService struct {
	userStore store.UserStore
	teamStore store.TeamStore
	tokens    *auth.TokenManager
}

func NewAuthService(userStore store.UserStore, teamStore store.TeamStore, tokens *auth.TokenManager) AuthService {
	return &authService{
		userStore: userStore,
		teamStore: teamStore,
		tokens:    tokens,
	}
}

func (s *authService) Register(ctx context.Context, params RegisterParams) (*model.User, string, error) {
	role, err := model.ParseRole(params.Role)
	if err != nil {
		return nil, "", invalid("Role must be one of: business, data_science")
	}
	if !role.SelfAssignable() {
		return nil, "", invalid("Role %s cannot be chosen at signup", role)
	}

	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, "", invalid("Name is required")
	}

	hash, err := auth.HashPassword(params.Password)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooShort) {
			return nil, "", invalid("%s", err.Error())
		}
		return nil, "", err
	}

	if params.TeamID != nil {
		if _, err := s.teamStore.GetByID(ctx, *params.TeamID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, "", ErrTeamNotFound
			}
			return nil, "", fmt.Errorf("getting team: %w", err)
		}
	}

	if _, err := s.userStore.GetByEmail(ctx, params.Email); err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, "", fmt.Errorf("checking email: %w", err)
	}

	user := &model.User{
		ID:           id.New(),
		Name:         name,
		Email:        params.Email,
		PasswordHash: hash,
		Role:         role,
		TeamID:       params.TeamID,
	}
	if err := s.userStore.Create(ctx, user); err != nil {
		if IsUniqueViolation(err) {
			return nil, "", ErrEmailTaken
		}
		slog.ErrorContext(ctx, "failed to create user", "error", err, "email", params.Email)
		return nil, "", fmt.Errorf("creating user: %w", err)
	}

	token, _, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", fmt.Errorf("issuing token: %w", err)
	}

	slog.InfoContext(ctx, "user registered", "user_id", user.ID, "role", user.Role)
	return user, token, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("getting user: %w", err)
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}

	token, _, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", fmt.Errorf("issuing token: %w", err)
	}
	return user, token, nil
}

func (s *authService) Authenticate(ctx context.Context, token string) (*model.User, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := s.userStore.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("resolving user: %w", err)
	}
	return user, nil
}
