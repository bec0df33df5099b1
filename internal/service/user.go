package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"kra.app/feedback/internal/model"
	"kra.app/feedback/internal/store"
)

type UserService interface {
	Get(ctx context.Context, userID int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	ListByRole(ctx context.Context, role model.Role) ([]model.User, error)
	// SetRole reports changed=false when the user already had the role.
	SetRole(ctx context.Context, userID int64, role model.Role) (user *model.User, changed bool, err error)
	SetTeam(ctx context.Context, userID int64, teamID *int64) (*model.User, error)
}

type userService struct {
	userStore store.UserStore
	teamStore store.TeamStore
}

func NewUserService(userStore store.UserStore, teamStore store.TeamStore) UserService {
	return &userService{
		userStore: userStore,
		teamStore: teamStore,
	}
}

func (s *userService) Get(ctx context.Context, userID int64) (*model.User, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return user, nil
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return user, nil
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	users, err := s.userStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return users, nil
}

func (s *userService) ListByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownRole, role)
	}
	users, err := s.userStore.ListByRole(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("listing users by role: %w", err)
	}
	return users, nil
}

func (s *userService) SetRole(ctx context.Context, userID int64, role model.Role) (*model.User, bool, error) {
	if !role.Valid() {
		return nil, false, fmt.Errorf("%w: %q", model.ErrUnknownRole, role)
	}

	user, err := s.Get(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	if user.Role == role {
		return user, false, nil
	}

	updated, err := s.userStore.UpdateRole(ctx, userID, role)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, false, ErrUserNotFound
		}
		return nil, false, fmt.Errorf("updating role: %w", err)
	}

	slog.InfoContext(ctx, "user role changed",
		"user_id", userID,
		"from", user.Role,
		"to", role,
	)
	return updated, true, nil
}

func (s *userService) SetTeam(ctx context.Context, userID int64, teamID *int64) (*model.User, error) {
	if teamID != nil {
		if _, err := s.teamStore.GetByID(ctx, *teamID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, ErrTeamNotFound
			}
			return nil, fmt.Errorf("getting team: %w", err)
		}
	}

	updated, err := s.userStore.UpdateTeam(ctx, userID, teamID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("updating team: %w", err)
	}
	return updated, nil
}
