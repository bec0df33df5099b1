package store

import (
	"kra.app/feedback/core/db/sqlc"
)

// Stores builds per-entity stores over one query set. The query set may be
// bound to a transaction, in which case every store shares it.
type Stores struct {
	queries *sqlc.Queries
}

func NewStores(queries *sqlc.Queries) *Stores {
	return &Stores{queries: queries}
}

func (s *Stores) Users() UserStore {
	return newUserStore(s.queries)
}

func (s *Stores) Teams() TeamStore {
	return newTeamStore(s.queries)
}

func (s *Stores) Dashboards() DashboardStore {
	return newDashboardStore(s.queries)
}

func (s *Stores) Charts() ChartStore {
	return newChartStore(s.queries)
}

func (s *Stores) Issues() IssueStore {
	return newIssueStore(s.queries)
}

func (s *Stores) Comments() CommentStore {
	return newCommentStore(s.queries)
}

func (s *Stores) Notifications() NotificationStore {
	return newNotificationStore(s.queries)
}

func (s *Stores) Leaderboard() LeaderboardStore {
	return newLeaderboardStore(s.queries)
}

func (s *Stores) AdminRequests() AdminRequestStore {
	return newAdminRequestStore(s.queries)
}

func (s *Stores) Stats() StatsStore {
	return newStatsStore(s.queries)
}
