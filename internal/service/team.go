package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"kra.app/feedback/common/id"
	"kra.app/feedback/internal/model"
	"kra.app/feedback/internal/store"
)

var ErrTeamNameTaken = errors.New("team name already exists")

type TeamService interface {
	List(ctx context.Context) ([]model.Team, error)
	Create(ctx context.Context, name string, description *string) (*model.Team, error)
	Update(ctx context.Context, teamID int64, name string, description *string) (*model.Team, error)
	Delete(ctx context.Context, teamID int64) error
}

type teamService struct {
	teams store.TeamStore
}

func NewTeamService(teams store.TeamStore) TeamService {
	return &teamService{teams: teams}
}

func (s *teamService) List(ctx context.Context) ([]model.Team, error) {
	teams, err := s.teams.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing teams: %w", err)
	}
	return teams, nil
}

func (s *teamService) Create(ctx context.Context, name string, description *string) (*model.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalid("Team name is required")
	}

	team := &model.Team{ID: id.New(), Name: name, Description: description}
	if err := s.teams.Create(ctx, team); err != nil {
		if IsUniqueViolation(err) {
			return nil, ErrTeamNameTaken
		}
		slog.ErrorContext(ctx, "failed to create team", "error", err, "name", name)
		return nil, fmt.Errorf("creating team: %w", err)
	}

	slog.InfoContext(ctx, "team created", "team_id", team.ID)
	return team, nil
}

func (s *teamService) Update(ctx context.Context, teamID int64, name string, description *string) (*model.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalid("Team name is required")
	}

	team := &model.Team{ID: teamID, Name: name, Description: description}
	if err := s.teams.Update(ctx, team); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return nil, ErrTeamNotFound
		case IsUniqueViolation(err):
			return nil, ErrTeamNameTaken
		}
		return nil, fmt.Errorf("updating team: %w", err)
	}
	return team, nil
}

func (s *teamService) Delete(ctx context.Context, teamID int64) error {
	if err := s.teams.Delete(ctx, teamID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTeamNotFound
		}
		return fmt.Errorf("deleting team: %w", err)
	}
	slog.InfoContext(ctx, "team deleted", "team_id", teamID)
	return nil
}
