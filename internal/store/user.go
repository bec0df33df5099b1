package store

import (
	"context"
	"strings"

	"kra.app/feedback/core/db/sqlc"
	"kra.app/feedback/internal/model"
)

type userStore struct {
	queries *sqlc.Queries
}

func newUserStore(queries *sqlc.Queries) UserStore {
	return &userStore{queries: queries}
}

func (s *userStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	row, err := s.queries.GetUser(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return toUserModel(row), nil
}

// GetByEmail matches case-insensitively; emails are stored lowercased.
func (s *userStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	row, err := s.queries.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, notFound(err)
	}
	return toUserModel(row), nil
}

func (s *userStore) Create(ctx context.Context, user *model.User) error {
	row, err := s.queries.CreateUser(ctx, sqlc.CreateUserParams{
		ID:           user.ID,
		Name:         user.Name,
		Email:        strings.ToLower(strings.TrimSpace(user.Email)),
		PasswordHash: user.PasswordHash,
		Role:         string(user.Role),
		TeamID:       user.TeamID,
	})
	if err != nil {
		return err
	}
	*user = *toUserModel(row)
	return nil
}

func (s *userStore) List(ctx context.Context) ([]model.User, error) {
	rows, err := s.queries.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	users := make([]model.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, model.User{
			ID:        row.ID,
			Name:      row.Name,
			Email:     row.Email,
			Role:      model.Role(row.Role),
			TeamID:    row.TeamID,
			TeamName:  row.TeamName,
			CreatedAt: row.CreatedAt.Time,
		})
	}
	return users, nil
}

func (s *userStore) ListByTeam(ctx context.Context, teamID int64) ([]model.User, error) {
	rows, err := s.queries.ListUsersByTeam(ctx, &teamID)
	if err != nil {
		return nil, err
	}
	return toUserModels(rows), nil
}

func (s *userStore) ListByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	rows, err := s.queries.ListUsersByRole(ctx, string(role))
	if err != nil {
		return nil, err
	}
	return toUserModels(rows), nil
}

func (s *userStore) UpdateRole(ctx context.Context, id int64, role model.Role) (*model.User, error) {
	row, err := s.queries.UpdateUserRole(ctx, sqlc.UpdateUserRoleParams{
		ID:   id,
		Role: string(role),
	})
	if err != nil {
		return nil, notFound(err)
	}
	return toUserModel(row), nil
}

func (s *userStore) UpdateTeam(ctx context.Context, id int64, teamID *int64) (*model.User, error) {
	row, err := s.queries.UpdateUserTeam(ctx, sqlc.UpdateUserTeamParams{
		ID:     id,
		TeamID: teamID,
	})
	if err != nil {
		return nil, notFound(err)
	}
	return toUserModel(row), nil
}

func toUserModel(row sqlc.User) *model.User {
	return &model.User{
		ID:           row.ID,
		Name:         row.Name,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		Role:         model.Role(row.Role),
		TeamID:       row.TeamID,
		CreatedAt:    row.CreatedAt.Time,
		UpdatedAt:    row.UpdatedAt.Time,
	}
}

func toUserModels(rows []sqlc.User) []model.User {
	users := make([]model.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, *toUserModel(row))
	}
	return users
}
