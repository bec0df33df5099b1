package service_test

import (
	"bytes"
	"context"
	"io"
	"sync"

	"kra.app/feedback/internal/model"
	"kra.app/feedback/internal/realtime"
	"kra.app/feedback/internal/service"
	"kra.app/feedback/internal/store"
)

type mockUserStore struct {
	getByIDFn    func(ctx context.Context, id int64) (*model.User, error)
	getByEmailFn func(ctx context.Context, email string) (*model.User, error)
	createFn     func(ctx context.Context, user *model.User) error
	listByTeamFn func(ctx context.Context, teamID int64) ([]model.User, error)
	listByRoleFn func(ctx context.Context, role model.Role) ([]model.User, error)
	updateRoleFn func(ctx context.Context, id int64, role model.Role) (*model.User, error)
	updateTeamFn func(ctx context.Context, id int64, teamID *int64) (*model.User, error)
	createCalls  int
}

func (m *mockUserStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return nil, store.ErrNotFound
}

func (m *mockUserStore) Create(ctx context.Context, user *model.User) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}

func (m *mockUserStore) List(ctx context.Context) ([]model.User, error) {
	return []model.User{}, nil
}

func (m *mockUserStore) ListByTeam(ctx context.Context, teamID int64) ([]model.User, error) {
	if m.listByTeamFn != nil {
		return m.listByTeamFn(ctx, teamID)
	}
	return []model.User{}, nil
}

func (m *mockUserStore) ListByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	if m.listByRoleFn != nil {
		return m.listByRoleFn(ctx, role)
	}
	return []model.User{}, nil
}

func (m *mockUserStore) UpdateRole(ctx context.Context, id int64, role model.Role) (*model.User, error) {
	if m.updateRoleFn != nil {
		return m.updateRoleFn(ctx, id, role)
	}
	return nil, nil
}

func (m *mockUserStore) UpdateTeam(ctx context.Context, id int64, teamID *int64) (*model.User, error) {
	if m.updateTeamFn != nil {
		return m.updateTeamFn(ctx, id, teamID)
	}
	return nil, nil
}

type mockTeamStore struct {
	getByIDFn func(ctx context.Context, id int64) (*model.Team, error)
	createFn  func(ctx context.Context, team *model.Team) error
	deleteFn  func(ctx context.Context, id int64) error
}

func (m *mockTeamStore) GetByID(ctx context.Context, id int64) (*model.Team, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return &model.Team{ID: id}, nil
}

func (m *mockTeamStore) Create(ctx context.Context, team *model.Team) error {
	if m.createFn != nil {
		return m.createFn(ctx, team)
	}
	return nil
}

func (m *mockTeamStore) Update(ctx context.Context, _ *model.Team) error {
	return nil
}

func (m *mockTeamStore) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockTeamStore) List(ctx context.Context) ([]model.Team, error) {
	return []model.Team{}, nil
}

type mockDashboardStore struct {
	getByIDFn func(ctx context.Context, id int64) (*model.Dashboard, error)
	createFn  func(ctx context.Context, dashboard *model.Dashboard) error
	updateFn  func(ctx context.Context, dashboard *model.Dashboard) error
}

func (m *mockDashboardStore) GetByID(ctx context.Context, id int64) (*model.Dashboard, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockDashboardStore) List(ctx context.Context) ([]model.Dashboard, error) {
	return []model.Dashboard{}, nil
}

func (m *mockDashboardStore) Create(ctx context.Context, dashboard *model.Dashboard) error {
	if m.createFn != nil {
		return m.createFn(ctx, dashboard)
	}
	return nil
}

func (m *mockDashboardStore) Update(ctx context.Context, dashboard *model.Dashboard) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, dashboard)
	}
	return nil
}

func (m *mockDashboardStore) Delete(ctx context.Context, _ int64) error {
	return nil
}

type mockChartStore struct {
	getByIDFn func(ctx context.Context, id int64) (*model.Chart, error)
	createFn  func(ctx context.Context, chart *model.Chart) error
}

func (m *mockChartStore) GetByID(ctx context.Context, id int64) (*model.Chart, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockChartStore) ListByDashboard(ctx context.Context, _ int64) ([]model.Chart, error) {
	return []model.Chart{}, nil
}

func (m *mockChartStore) Create(ctx context.Context, chart *model.Chart) error {
	if m.createFn != nil {
		return m.createFn(ctx, chart)
	}
	return nil
}

func (m *mockChartStore) Update(ctx context.Context, _ *model.Chart) error {
	return nil
}

func (m *mockChartStore) Delete(ctx context.Context, _ int64) error {
	return nil
}

type mockIssueStore struct {
	getByIDFn          func(ctx context.Context, id int64) (*model.Issue, error)
	getForUpdateFn     func(ctx context.Context, id int64) (*model.Issue, error)
	createFn           func(ctx context.Context, issue *model.Issue) error
	updateStatusFn     func(ctx context.Context, id int64, status model.IssueStatus) (*model.Issue, error)
	deleteFn           func(ctx context.Context, id int64) error
	countByDashboardFn func(ctx context.Context, dashboardID int64) (int64, error)
	countByChartFn     func(ctx context.Context, chartID int64) (int64, error)
	updateStatusCalls  int
	deleteCalls        int
}

func (m *mockIssueStore) GetByID(ctx context.Context, id int64) (*model.Issue, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockIssueStore) GetForUpdate(ctx context.Context, id int64) (*model.Issue, error) {
	if m.getForUpdateFn != nil {
		return m.getForUpdateFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockIssueStore) Create(ctx context.Context, issue *model.Issue) error {
	if m.createFn != nil {
		return m.createFn(ctx, issue)
	}
	return nil
}

func (m *mockIssueStore) List(ctx context.Context, _ model.IssueFilter) ([]model.IssueSummary, error) {
	return []model.IssueSummary{}, nil
}

func (m *mockIssueStore) UpdateStatus(ctx context.Context, id int64, status model.IssueStatus) (*model.Issue, error) {
	m.updateStatusCalls++
	if m.updateStatusFn != nil {
		return m.updateStatusFn(ctx, id, status)
	}
	return &model.Issue{ID: id, Status: status}, nil
}

func (m *mockIssueStore) Delete(ctx context.Context, id int64) error {
	m.deleteCalls++
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockIssueStore) CountByDashboard(ctx context.Context, dashboardID int64) (int64, error) {
	if m.countByDashboardFn != nil {
		return m.countByDashboardFn(ctx, dashboardID)
	}
	return 0, nil
}

func (m *mockIssueStore) CountByChart(ctx context.Context, chartID int64) (int64, error) {
	if m.countByChartFn != nil {
		return m.countByChartFn(ctx, chartID)
	}
	return 0, nil
}

type mockCommentStore struct {
	getByIDFn     func(ctx context.Context, id int64) (*model.Comment, error)
	createFn      func(ctx context.Context, comment *model.Comment) error
	listByIssueFn func(ctx context.Context, issueID int64) ([]model.CommentWithAuthor, error)
	updateTextFn  func(ctx context.Context, id int64, text string) (*model.Comment, error)
	deleteFn      func(ctx context.Context, id int64) error
	createCalls   int
	updateCalls   int
	deleteCalls   int
}

func (m *mockCommentStore) GetByID(ctx context.Context, id int64) (*model.Comment, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockCommentStore) Create(ctx context.Context, comment *model.Comment) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, comment)
	}
	return nil
}

func (m *mockCommentStore) ListByIssue(ctx context.Context, issueID int64) ([]model.CommentWithAuthor, error) {
	if m.listByIssueFn != nil {
		return m.listByIssueFn(ctx, issueID)
	}
	return []model.CommentWithAuthor{}, nil
}

func (m *mockCommentStore) UpdateText(ctx context.Context, id int64, text string) (*model.Comment, error) {
	m.updateCalls++
	if m.updateTextFn != nil {
		return m.updateTextFn(ctx, id, text)
	}
	return &model.Comment{ID: id, Text: text}, nil
}

func (m *mockCommentStore) Delete(ctx context.Context, id int64) error {
	m.deleteCalls++
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// mockNotificationStore is called from fan-out goroutines.
type mockNotificationStore struct {
	mu         sync.Mutex
	createFn   func(ctx context.Context, n *model.Notification) error
	markReadFn func(ctx context.Context, id, userID int64) error
	created    []model.Notification
}

func (m *mockNotificationStore) Create(ctx context.Context, n *model.Notification) error {
	if m.createFn != nil {
		if err := m.createFn(ctx, n); err != nil {
			return err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created = append(m.created, *n)
	return nil
}

func (m *mockNotificationStore) recipients() map[int64]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[int64]string, len(m.created))
	for _, n := range m.created {
		out[n.UserID] = n.Message
	}
	return out
}

func (m *mockNotificationStore) ListByUser(ctx context.Context, _ int64, _ bool, _ int32) ([]model.Notification, error) {
	return []model.Notification{}, nil
}

func (m *mockNotificationStore) MarkRead(ctx context.Context, id, userID int64) error {
	if m.markReadFn != nil {
		return m.markReadFn(ctx, id, userID)
	}
	return nil
}

func (m *mockNotificationStore) MarkAllRead(ctx context.Context, _ int64) (int64, error) {
	return 0, nil
}

func (m *mockNotificationStore) Delete(ctx context.Context, _, _ int64) error {
	return nil
}

func (m *mockNotificationStore) CountUnread(ctx context.Context, _ int64) (int64, error) {
	return 0, nil
}

type mockLeaderboardStore struct {
	mu       sync.Mutex
	recordFn func(ctx context.Context, activity *model.LeaderboardActivity) (bool, error)
	recorded []model.LeaderboardActivity
}

func (m *mockLeaderboardStore) Record(ctx context.Context, activity *model.LeaderboardActivity) (bool, error) {
	if m.recordFn != nil {
		return m.recordFn(ctx, activity)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recorded = append(m.recorded, *activity)
	return true, nil
}

func (m *mockLeaderboardStore) List(ctx context.Context, _ model.LeaderboardAction, _ int32) ([]model.LeaderboardEntry, error) {
	return []model.LeaderboardEntry{}, nil
}

type mockAdminRequestStore struct {
	getByIDFn func(ctx context.Context, id int64) (*model.AdminRequest, error)
	listFn    func(ctx context.Context, filter model.AdminRequestFilter) ([]model.AdminRequest, error)
	resolveFn func(ctx context.Context, id int64, status model.AdminRequestStatus, response *string, adminID int64) (*model.AdminRequest, error)
}

func (m *mockAdminRequestStore) GetByID(ctx context.Context, id int64) (*model.AdminRequest, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockAdminRequestStore) Create(ctx context.Context, _ *model.AdminRequest) error {
	return nil
}

func (m *mockAdminRequestStore) List(ctx context.Context, filter model.AdminRequestFilter) ([]model.AdminRequest, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return []model.AdminRequest{}, nil
}

func (m *mockAdminRequestStore) Resolve(ctx context.Context, id int64, status model.AdminRequestStatus, response *string, adminID int64) (*model.AdminRequest, error) {
	if m.resolveFn != nil {
		return m.resolveFn(ctx, id, status, response, adminID)
	}
	return &model.AdminRequest{ID: id, Status: status, AdminResponse: response, ResolvedByAdminID: &adminID}, nil
}

type publishedEvent struct {
	userID  int64
	event   string
	payload any
}

type mockPublisher struct {
	mu        sync.Mutex
	publishFn func(ctx context.Context, userID int64, event string, payload any) error
	published []publishedEvent
}

func (m *mockPublisher) Publish(ctx context.Context, userID int64, event string, payload any) error {
	if m.publishFn != nil {
		if err := m.publishFn(ctx, userID, event, payload); err != nil {
			return err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.published = append(m.published, publishedEvent{userID: userID, event: event, payload: payload})
	return nil
}

func (m *mockPublisher) events() []publishedEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]publishedEvent(nil), m.published...)
}

type mockSubscriber struct {
	subscribeFn func(ctx context.Context, userID int64) (*realtime.Subscription, error)
}

func (m *mockSubscriber) Subscribe(ctx context.Context, userID int64) (*realtime.Subscription, error) {
	if m.subscribeFn != nil {
		return m.subscribeFn(ctx, userID)
	}
	return nil, realtime.ErrDisabled
}

type mockObjectStore struct {
	putFn        func(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
	keys         []string
	contentTypes []string
	bodies       [][]byte
}

func (m *mockObjectStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	m.keys = append(m.keys, key)
	m.contentTypes = append(m.contentTypes, contentType)
	body, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	m.bodies = append(m.bodies, body)
	r = bytes.NewReader(body)
	if m.putFn != nil {
		return m.putFn(ctx, key, r, size, contentType)
	}
	return "http://objects.test/kra-attachments/" + key, nil
}

type mockStoreProvider struct {
	issues   store.IssueStore
	comments store.CommentStore
}

func (m *mockStoreProvider) Issues() store.IssueStore {
	return m.issues
}

func (m *mockStoreProvider) Comments() store.CommentStore {
	return m.comments
}

type mockTxRunner struct {
	withTxFn func(ctx context.Context, fn func(stores service.StoreProvider) error) error
}

func (m *mockTxRunner) WithTx(ctx context.Context, fn func(stores service.StoreProvider) error) error {
	if m.withTxFn != nil {
		return m.withTxFn(ctx, fn)
	}
	return fn(&mockStoreProvider{})
}

func int64Ptr(v int64) *int64 {
	return &v
}

func strPtr(s string) *string {
	return &s
}
