package store

import (
	"context"

	"kra.app/feedback/core/db/sqlc"
	"kra.app/feedback/internal/model"
)

type teamStore struct {
	queries *sqlc.Queries
}

func newTeamStore(queries *sqlc.Queries) TeamStore {
	return &teamStore{queries: queries}
}

func (s *teamStore) GetByID(ctx context.Context, id int64) (*model.Team, error) {
	row, err := s.queries.GetTeam(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return toTeamModel(row), nil
}

func (s *teamStore) Create(ctx context.Context, team *model.Team) error {
	row, err := s.queries.CreateTeam(ctx, sqlc.CreateTeamParams{
		ID:          team.ID,
		Name:        team.Name,
		Description: team.Description,
	})
	if err != nil {
		return err
	}
	*team = *toTeamModel(row)
	return nil
}

func (s *teamStore) Update(ctx context.Context, team *model.Team) error {
	row, err := s.queries.UpdateTeam(ctx, sqlc.UpdateTeamParams{
		ID:          team.ID,
		Name:        team.Name,
		Description: team.Description,
	})
	if err != nil {
		return notFound(err)
	}
	*team = *toTeamModel(row)
	return nil
}

func (s *teamStore) Delete(ctx context.Context, id int64) error {
	return affected(s.queries.DeleteTeam(ctx, id))
}

func (s *teamStore) List(ctx context.Context) ([]model.Team, error) {
	rows, err := s.queries.ListTeams(ctx)
	if err != nil {
		return nil, err
	}

	teams := make([]model.Team, 0, len(rows))
	for _, row := range rows {
		teams = append(teams, model.Team{
			ID:          row.ID,
			Name:        row.Name,
			Description: row.Description,
			MemberCount: row.MemberCount,
			CreatedAt:   row.CreatedAt.Time,
			UpdatedAt:   row.UpdatedAt.Time,
		})
	}
	return teams, nil
}

func toTeamModel(row sqlc.Team) *model.Team {
	return &model.Team{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}
