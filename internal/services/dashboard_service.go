package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/config"
	dbm "github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/models/db_models"
	resp "github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/models/response_models"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/repositories"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/pkg/utils"
)

const (
	DefaultTopPackages    = 5
	DefaultRecentActivity = 10
	MaxDashboardLimit     = 50

	minReportYear = 2000
	maxReportYear = 2100
)

type DashboardServiceInterface interface {
	Summary(ctx context.Context) (*resp.DashboardSummary, error)
	MonthlyRevenue(ctx context.Context, year int) (*resp.MonthlyRevenue, error)
	TopPackages(ctx context.Context, limit int) ([]resp.TopPackage, error)
	RecentActivity(ctx context.Context, limit int) ([]resp.ActivityItem, error)
}

type DashboardService struct {
	repo     repositories.ReportRepository
	loc      *time.Location
	currency string
	log      *zap.Logger
	now      func() time.Time
}

func NewDashboardService(repo repositories.ReportRepository, cfg *config.Config, log *zap.Logger) DashboardServiceInterface {
	return &DashboardService{
		repo:     repo,
		loc:      utils.LoadLocation(cfg.App.Timezone),
		currency: cfg.App.Currency,
		log:      log.Named("dashboard"),
		now:      time.Now,
	}
}

func (s *DashboardService) Summary(ctx context.Context) (*resp.DashboardSummary, error) {
	out := &resp.DashboardSummary{Currency: s.currency}

	counts := []struct {
		op  string
		dst *int64
		fn  func(context.Context) (int64, error)
	}{
		{"count users", &out.Users, s.repo.CountUsers},
		{"count hotels", &out.Hotels, s.repo.CountHotels},
		{"count locations", &out.Locations, s.repo.CountLocations},
		{"count food options", &out.FoodOptions, s.repo.CountFoodOptions},
		{"count gallery images", &out.GalleryImages, s.repo.CountGalleryImages},
	}
	for _, c := range counts {
		n, err := c.fn(ctx)
		if err != nil {
			return nil, dbError(s.log, c.op, err)
		}
		*c.dst = n
	}

	var err error
	if out.Packages, err = s.repo.CountPackages(ctx, false); err != nil {
		return nil, dbError(s.log, "count packages", err)
	}
	if out.ActivePackages, err = s.repo.CountPackages(ctx, true); err != nil {
		return nil, dbError(s.log, "count active packages", err)
	}

	breakdown, err := s.repo.BookingStatusBreakdown(ctx)
	if err != nil {
		return nil, dbError(s.log, "booking status breakdown", err)
	}
	for _, row := range breakdown {
		out.Bookings += row.Count
		switch row.Status {
		case dbm.BookingPending:
			out.BookingsBy.Pending = row.Count
		case dbm.BookingConfirmed:
			out.BookingsBy.Confirmed = row.Count
		case dbm.BookingCompleted:
			out.BookingsBy.Completed = row.Count
		case dbm.BookingCancelled:
			out.BookingsBy.Cancelled = row.Count
		}
	}

	if out.Reviews, out.AverageRating, err = s.repo.ReviewStats(ctx); err != nil {
		return nil, dbError(s.log, "review stats", err)
	}

	// 0,0 means no bounds.
	if out.TotalRevenue, err = s.repo.PaidRevenue(ctx, 0, 0); err != nil {
		return nil, dbError(s.log, "total revenue", err)
	}
	start, end := utils.MonthBounds(s.now(), s.loc)
	if out.CurrentMonthRevenue, err = s.repo.PaidRevenue(ctx, start, end); err != nil {
		return nil, dbError(s.log, "month revenue", err)
	}
	return out, nil
}

// MonthlyRevenue returns twelve buckets for year, zero-filled. Year 0 means
// the current year in the configured timezone.
func (s *DashboardService) MonthlyRevenue(ctx context.Context, year int) (*resp.MonthlyRevenue, error) {
	if year == 0 {
		year = s.now().In(s.loc).Year()
	}
	if year < minReportYear || year > maxReportYear {
		return nil, fmt.Errorf("%w: year must be between %d and %d", utils.ErrInvalidDateRange, minReportYear, maxReportYear)
	}

	start, end := utils.YearBounds(year, s.loc)
	rows, err := s.repo.MonthlyRevenue(ctx, start, end, s.loc.String())
	if err != nil {
		return nil, dbError(s.log, "monthly revenue", err)
	}

	out := &resp.MonthlyRevenue{
		Year:     year,
		Timezone: s.loc.String(),
		Currency: s.currency,
		Months:   make([]resp.MonthlyRevenuePoint, 12),
	}
	for i := range out.Months {
		out.Months[i] = resp.MonthlyRevenuePoint{Month: i + 1, Label: time.Month(i + 1).String()[:3]}
	}
	for _, row := range rows {
		if row.Month < 1 || row.Month > 12 {
			continue
		}
		p := &out.Months[row.Month-1]
		p.Revenue = row.Revenue
		p.Bookings = row.Bookings
		out.Total += row.Revenue
	}
	return out, nil
}

func (s *DashboardService) TopPackages(ctx context.Context, limit int) ([]resp.TopPackage, error) {
	limit = clampLimit(limit, DefaultTopPackages)
	rows, err := s.repo.TopPackages(ctx, limit)
	if err != nil {
		return nil, dbError(s.log, "top packages", err)
	}
	if rows == nil {
		rows = []resp.TopPackage{}
	}
	return rows, nil
}

// RecentActivity merges the newest bookings, reviews and sign-ups into one
// feed ordered newest first.
func (s *DashboardService) RecentActivity(ctx context.Context, limit int) ([]resp.ActivityItem, error) {
	limit = clampLimit(limit, DefaultRecentActivity)

	bookings, err := s.repo.RecentBookings(ctx, limit)
	if err != nil {
		return nil, dbError(s.log, "recent bookings", err)
	}
	reviews, err := s.repo.RecentReviews(ctx, limit)
	if err != nil {
		return nil, dbError(s.log, "recent reviews", err)
	}
	users, err := s.repo.RecentUsers(ctx, limit)
	if err != nil {
		return nil, dbError(s.log, "recent users", err)
	}

	items := make([]resp.ActivityItem, 0, len(bookings)+len(reviews)+len(users))
	for _, b := range bookings {
		items = append(items, resp.ActivityItem{
			Type:       resp.ActivityBooking,
			ID:         b.ID.String(),
			Title:      fmt.Sprintf("%s booked %s", userName(b.User, b.ContactName), packageTitle(b.Package)),
			Detail:     fmt.Sprintf("%d traveller(s) on %s", b.Travelers, b.TravelDate.Format("2006-01-02")),
			Status:     b.Status,
			OccurredAt: time.Unix(b.CreatedAt, 0).In(s.loc),
		})
	}
	for _, r := range reviews {
		items = append(items, resp.ActivityItem{
			Type:       resp.ActivityReview,
			ID:         r.ID.String(),
			Title:      fmt.Sprintf("%s reviewed %s", userName(r.User, ""), packageTitle(r.Package)),
			Detail:     fmt.Sprintf("%d/5 %s", r.Rating, r.Title),
			Status:     r.Status,
			OccurredAt: time.Unix(r.CreatedAt, 0).In(s.loc),
		})
	}
	for _, u := range users {
		items = append(items, resp.ActivityItem{
			Type:       resp.ActivitySignup,
			ID:         u.ID.String(),
			Title:      fmt.Sprintf("%s signed up", u.Name),
			Detail:     u.Email,
			Status:     u.Role,
			OccurredAt: time.Unix(u.CreatedAt, 0).In(s.loc),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].OccurredAt.After(items[j].OccurredAt)
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func clampLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	if limit > MaxDashboardLimit {
		return MaxDashboardLimit
	}
	return limit
}

func userName(u *dbm.User, fallback string) string {
	if u != nil && u.Name != "" {
		return u.Name
	}
	if fallback != "" {
		return fallback
	}
	return "Someone"
}

func packageTitle(p *dbm.Package) string {
	if p != nil {
		return p.Title
	}
	return "a package"
}
