package store

import (
	"context"

	"kra.app/feedback/core/db/sqlc"
	"kra.app/feedback/internal/model"
)

type adminRequestStore struct {
	queries *sqlc.Queries
}

func newAdminRequestStore(queries *sqlc.Queries) AdminRequestStore {
	return &adminRequestStore{queries: queries}
}

func (s *adminRequestStore) GetByID(ctx context.Context, id int64) (*model.AdminRequest, error) {
	row, err := s.queries.GetAdminRequest(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return toAdminRequestModel(row), nil
}

func (s *adminRequestStore) Create(ctx context.Context, req *model.AdminRequest) error {
	row, err := s.queries.CreateAdminRequest(ctx, sqlc.CreateAdminRequestParams{
		ID:                req.ID,
		SubmittedByUserID: req.SubmittedByUserID,
		DashboardID:       req.DashboardID,
		Subject:           req.Subject,
		Description:       req.Description,
	})
	if err != nil {
		return err
	}
	name := req.SubmittedByName
	*req = *toAdminRequestModel(row)
	req.SubmittedByName = name
	return nil
}

func (s *adminRequestStore) List(ctx context.Context, filter model.AdminRequestFilter) ([]model.AdminRequest, error) {
	params := sqlc.ListAdminRequestsParams{
		SubmittedByUserID: filter.SubmittedByUserID,
	}
	if filter.Status != nil {
		status := string(*filter.Status)
		params.Status = &status
	}

	rows, err := s.queries.ListAdminRequests(ctx, params)
	if err != nil {
		return nil, err
	}

	out := make([]model.AdminRequest, 0, len(rows))
	for _, row := range rows {
		out = append(out, model.AdminRequest{
			ID:                row.ID,
			SubmittedByUserID: row.SubmittedByUserID,
			SubmittedByName:   row.SubmittedByName,
			DashboardID:       row.DashboardID,
			DashboardName:     row.DashboardName,
			Subject:           row.Subject,
			Description:       row.Description,
			Status:            model.AdminRequestStatus(row.Status),
			AdminResponse:     row.AdminResponse,
			ResolvedByAdminID: row.ResolvedByAdminID,
			CreatedAt:         row.CreatedAt.Time,
			UpdatedAt:         row.UpdatedAt.Time,
		})
	}
	return out, nil
}

func (s *adminRequestStore) Resolve(ctx context.Context, id int64, status model.AdminRequestStatus, response *string, adminID int64) (*model.AdminRequest, error) {
	row, err := s.queries.ResolveAdminRequest(ctx, sqlc.ResolveAdminRequestParams{
		ID:                id,
		Status:            string(status),
		AdminResponse:     response,
		ResolvedByAdminID: &adminID,
	})
	if err != nil {
		return nil, notFound(err)
	}
	return toAdminRequestModel(row), nil
}

func toAdminRequestModel(row sqlc.AdminRequest) *model.AdminRequest {
	return &model.AdminRequest{
		ID:                row.ID,
		SubmittedByUserID: row.SubmittedByUserID,
		DashboardID:       row.DashboardID,
		Subject:           row.Subject,
		Description:       row.Description,
		Status:            model.AdminRequestStatus(row.Status),
		AdminResponse:     row.AdminResponse,
		ResolvedByAdminID: row.ResolvedByAdminID,
		CreatedAt:         row.CreatedAt.Time,
		UpdatedAt:         row.UpdatedAt.Time,
	}
}
