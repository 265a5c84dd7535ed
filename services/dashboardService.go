package services

import (
	"context"
	"time"

	"shawon-burger/helpers"
	"shawon-burger/models"

	"golang.org/x/sync/errgroup"
)

const popularItemsLimit = 5

type DashboardService struct {
	store DashboardStore
	loc   *time.Location
	now   func() time.Time
}

func NewDashboardService(store DashboardStore, loc *time.Location) *DashboardService {
	if loc == nil {
		loc = time.UTC
	}
	return &DashboardService{store: store, loc: loc, now: time.Now}
}

// Stats computes every rollup for the range concurrently. Empty collections
// produce zero values and empty slices.
func (s *DashboardService) Stats(ctx context.Context, dateRange string) (*models.DashboardStats, error) {
	dateRange = helpers.NormalizeRange(dateRange)
	start := helpers.RangeStart(s.now().In(s.loc), dateRange)
	stats := &models.DashboardStats{DateRange: dateRange}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.TotalOrders, err = s.store.CountOrders(gctx, nil)
		return err
	})
	g.Go(func() (err error) {
		stats.PeriodOrders, err = s.store.CountOrders(gctx, &start)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalRevenue, err = s.store.SumRevenue(gctx, nil)
		return err
	})
	g.Go(func() (err error) {
		stats.PeriodRevenue, err = s.store.SumRevenue(gctx, &start)
		return err
	})
	g.Go(func() (err error) {
		stats.UserCount, err = s.store.CountCustomers(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.OrderStatusCounts, err = s.store.StatusCounts(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.PopularItems, err = s.store.PopularItems(gctx, popularItemsLimit)
		return err
	})
	g.Go(func() (err error) {
		stats.DailyStats, err = s.store.DailyStats(gctx, start, s.loc)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if stats.OrderStatusCounts == nil {
		stats.OrderStatusCounts = map[string]int64{}
	}
	for _, st := range models.OrderStatuses {
		if _, ok := stats.OrderStatusCounts[st]; !ok {
			stats.OrderStatusCounts[st] = 0
		}
	}
	if stats.PopularItems == nil {
		stats.PopularItems = []models.PopularItem{}
	}
	if stats.DailyStats == nil {
		stats.DailyStats = []models.DailyStat{}
	}
	return stats, nil
}

// Now is the current time in the dashboard's timezone.
func (s *DashboardService) Now() time.Time {
	return s.now().In(s.loc)
}
