package service_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"kra.app/feedback/internal/model"
	"kra.app/feedback/internal/service"
)

var _ = Describe("PriorityService", func() {
	It("buckets the live thread count", func() {
		issues := &mockIssueStore{
			countByDashboardFn: func(_ context.Context, _ int64) (int64, error) { return 12, nil },
			countByChartFn:     func(_ context.Context, _ int64) (int64, error) { return 5, nil },
		}
		svc := service.NewPriorityService(issues)

		Expect(svc.ForDashboard(context.Background(), 1)).To(Equal(model.PriorityInfo{Priority: model.PriorityHigh, ThreadCount: 12}))
		Expect(svc.ForChart(context.Background(), 1)).To(Equal(model.PriorityInfo{Priority: model.PriorityMedium, ThreadCount: 5}))
	})

	It("degrades to none when counting fails", func() {
		issues := &mockIssueStore{
			countByDashboardFn: func(_ context.Context, _ int64) (int64, error) { return 0, errors.New("db down") },
		}
		svc := service.NewPriorityService(issues)

		Expect(svc.ForDashboard(context.Background(), 1)).To(Equal(model.PriorityInfo{Priority: model.PriorityNone}))
	})
})
