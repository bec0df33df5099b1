// Package testdb opens a migrated Postgres database for integration tests and
// seeds the rows most tests need. Tests using it skip unless TEST_DATABASE_URL is set.
package testdb

import (
	"context"
	"fmt"
	"os"
	"testing"

	"kra.app/feedback/common/id"
	"kra.app/feedback/core/db"
	"kra.app/feedback/internal/model"
	"kra.app/feedback/internal/store"
)

// Open skips the test in short mode or when TEST_DATABASE_URL is unset.
// The database is migrated before it is returned and closed on cleanup.
func Open(t *testing.T) *db.DB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	if err := id.Init(1); err != nil {
		t.Fatalf("init id node: %v", err)
	}

	ctx := context.Background()
	database, err := db.New(ctx, db.Config{DSN: url})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(database.Close)

	if err := database.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return database
}

// Fixture is a team with one business and one data science member and a
// dashboard assigned to the team. Names and emails are unique per call so
// runs against a shared database do not collide.
type Fixture struct {
	Stores      *store.Stores
	Team        *model.Team
	Business    *model.User
	DataScience *model.User
	Dashboard   *model.Dashboard
}

func Seed(t *testing.T, database *db.DB) *Fixture {
	t.Helper()

	ctx := context.Background()
	stores := store.NewStores(database.Queries())
	suffix := id.New()

	team := &model.Team{ID: id.New(), Name: fmt.Sprintf("Data Science %d", suffix)}
	if err := stores.Teams().Create(ctx, team); err != nil {
		t.Fatalf("create team: %v", err)
	}

	business := &model.User{
		ID:           id.New(),
		Name:         "Bea Business",
		Email:        fmt.Sprintf("business-%d@kra.test", suffix),
		PasswordHash: "x",
		Role:         model.RoleBusiness,
	}
	if err := stores.Users().Create(ctx, business); err != nil {
		t.Fatalf("create business user: %v", err)
	}

	analyst := &model.User{
		ID:           id.New(),
		Name:         "Dana Data",
		Email:        fmt.Sprintf("ds-%d@kra.test", suffix),
		PasswordHash: "x",
		Role:         model.RoleDataScience,
		TeamID:       &team.ID,
	}
	if err := stores.Users().Create(ctx, analyst); err != nil {
		t.Fatalf("create data science user: %v", err)
	}

	dashboard := &model.Dashboard{
		ID:             id.New(),
		Name:           fmt.Sprintf("Revenue %d", suffix),
		AssignedTeamID: &team.ID,
	}
	if err := stores.Dashboards().Create(ctx, dashboard); err != nil {
		t.Fatalf("create dashboard: %v", err)
	}

	return &Fixture{
		Stores:      stores,
		Team:        team,
		Business:    business,
		DataScience: analyst,
		Dashboard:   dashboard,
	}
}

// Issue creates a thread on the fixture dashboard submitted by the business user.
func (f *Fixture) Issue(t *testing.T, status model.IssueStatus) *model.Issue {
	t.Helper()

	issue := &model.Issue{
		ID:                id.New(),
		DashboardID:       f.Dashboard.ID,
		Title:             "Numbers look off",
		Description:       "Q3 revenue does not match finance",
		Status:            status,
		SubmittedByUserID: f.Business.ID,
		AssignedTeamID:    &f.Team.ID,
	}
	if err := f.Stores.Issues().Create(context.Background(), issue); err != nil {
		t.Fatalf("create issue: %v", err)
	}
	return issue
}
