package service

import (
	"kra.app/feedback/internal/auth"
	"kra.app/feedback/internal/realtime"
	"kra.app/feedback/internal/storage"
	"kra.app/feedback/internal/store"
)

type Services struct {
	stores            *store.Stores
	txRunner          TxRunner
	tokens            *auth.TokenManager
	hub               realtime.Hub
	objects           storage.ObjectStore
	notifyConcurrency int
}

// NewServices wires services over shared stores. objects may be nil when
// attachment storage is not configured.
func NewServices(
	stores *store.Stores,
	txRunner TxRunner,
	tokens *auth.TokenManager,
	hub realtime.Hub,
	objects storage.ObjectStore,
	notifyConcurrency int,
) *Services {
	return &Services{
		stores:            stores,
		txRunner:          txRunner,
		tokens:            tokens,
		hub:               hub,
		objects:           objects,
		notifyConcurrency: notifyConcurrency,
	}
}

func (s *Services) Auth() AuthService {
	return NewAuthService(s.stores.Users(), s.stores.Teams(), s.tokens)
}

func (s *Services) Users() UserService {
	return NewUserService(s.stores.Users(), s.stores.Teams())
}

func (s *Services) Teams() TeamService {
	return NewTeamService(s.stores.Teams())
}

func (s *Services) Dashboards() DashboardService {
	return NewDashboardService(s.stores.Dashboards(), s.stores.Teams())
}

func (s *Services) Charts() ChartService {
	return NewChartService(s.stores.Charts(), s.stores.Dashboards())
}

func (s *Services) Priority() PriorityService {
	return NewPriorityService(s.stores.Issues())
}

func (s *Services) Issues() IssueService {
	return NewIssueService(s.stores.Issues(), s.stores.Dashboards(), s.stores.Charts())
}

func (s *Services) Comments() CommentService {
	return NewCommentService(
		s.txRunner,
		s.stores.Issues(),
		s.stores.Comments(),
		s.stores.Users(),
		s.stores.Notifications(),
		s.stores.Leaderboard(),
		s.hub,
		s.notifyConcurrency,
	)
}

func (s *Services) Notifications() NotificationService {
	return NewNotificationService(s.stores.Notifications(), s.hub)
}

func (s *Services) AdminRequests() AdminRequestService {
	return NewAdminRequestService(s.stores.AdminRequests(), s.stores.Dashboards())
}

func (s *Services) Stats() StatsService {
	return NewStatsService(s.stores.Stats(), s.stores.Leaderboard())
}

func (s *Services) Attachments() AttachmentService {
	return NewAttachmentService(s.objects)
}
