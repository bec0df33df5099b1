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

var (
	ErrAdminRequestNotFound = errors.New("admin request not found")
	ErrAdminRequestClosed   = errors.New("admin request already resolved")
)

type CreateAdminRequestParams struct {
	Subject     string
	Description string
	DashboardID *int64
}

type AdminRequestService interface {
	Create(ctx context.Context, caller *model.User, params CreateAdminRequestParams) (*model.AdminRequest, error)
	// List shows admins every request and everyone else only their own.
	List(ctx context.Context, caller *model.User, status *model.AdminRequestStatus) ([]model.AdminRequest, error)
	Resolve(ctx context.Context, admin *model.User, requestID int64, status model.AdminRequestStatus, response *string) (*model.AdminRequest, error)
}

type adminRequestService struct {
	requests   store.AdminRequestStore
	dashboards store.DashboardStore
}

func NewAdminRequestService(requests store.AdminRequestStore, dashboards store.DashboardStore) AdminRequestService {
	return &adminRequestService{requests: requests, dashboards: dashboards}
}

func (s *adminRequestService) Create(ctx context.Context, caller *model.User, params CreateAdminRequestParams) (*model.AdminRequest, error) {
	subject := strings.TrimSpace(params.Subject)
	if subject == "" || strings.TrimSpace(params.Description) == "" {
		return nil, invalid("Subject and description are required")
	}

	if params.DashboardID != nil {
		if _, err := s.dashboards.GetByID(ctx, *params.DashboardID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, ErrDashboardNotFound
			}
			return nil, fmt.Errorf("getting dashboard: %w", err)
		}
	}

	req := &model.AdminRequest{
		ID:                id.New(),
		SubmittedByUserID: caller.ID,
		DashboardID:       params.DashboardID,
		Subject:           subject,
		Description:       params.Description,
		Status:            model.AdminRequestStatusPending,
	}
	if err := s.requests.Create(ctx, req); err != nil {
		slog.ErrorContext(ctx, "failed to create admin request", "error", err)
		return nil, fmt.Errorf("creating admin request: %w", err)
	}

	slog.InfoContext(ctx, "admin request submitted", "request_id", req.ID)
	return req, nil
}

func (s *adminRequestService) List(ctx context.Context, caller *model.User, status *model.AdminRequestStatus) ([]model.AdminRequest, error) {
	filter := model.AdminRequestFilter{Status: status}
	switch caller.Role {
	case model.RoleAdmin:
	case model.RoleBusiness, model.RoleDataScience:
		filter.SubmittedByUserID = &caller.ID
	default:
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownRole, caller.Role)
	}

	requests, err := s.requests.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing admin requests: %w", err)
	}
	return requests, nil
}

func (s *adminRequestService) Resolve(ctx context.Context, admin *model.User, requestID int64, status model.AdminRequestStatus, response *string) (*model.AdminRequest, error) {
	if status == model.AdminRequestStatusPending {
		return nil, invalid("Status must be resolved or rejected")
	}

	current, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrAdminRequestNotFound
		}
		return nil, fmt.Errorf("getting admin request: %w", err)
	}
	if current.Status != model.AdminRequestStatusPending {
		return nil, ErrAdminRequestClosed
	}

	resolved, err := s.requests.Resolve(ctx, requestID, status, response, admin.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrAdminRequestNotFound
		}
		return nil, fmt.Errorf("resolving admin request: %w", err)
	}

	slog.InfoContext(ctx, "admin request resolved",
		"request_id", requestID,
		"status", status,
		"admin_id", admin.ID,
	)
	return resolved, nil
}
