package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/mocks"
	dbm "github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/models/db_models"
	resp "github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/models/response_models"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/repositories"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/pkg/utils"
)

func newDashboard(repo *mocks.ReportRepo, tz string) *DashboardService {
	cfg := testConfig()
	cfg.App.Timezone = tz
	svc := NewDashboardService(repo, cfg, zap.NewNop()).(*DashboardService)
	svc.now = func() time.Time { return time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC) }
	return svc
}

func TestDashboardService_Summary(t *testing.T) {
	repo := new(mocks.ReportRepo)
	svc := newDashboard(repo, "UTC")

	repo.On("CountUsers", mock.Anything).Return(int64(40), nil)
	repo.On("CountHotels", mock.Anything).Return(int64(8), nil)
	repo.On("CountLocations", mock.Anything).Return(int64(12), nil)
	repo.On("CountFoodOptions", mock.Anything).Return(int64(6), nil)
	repo.On("CountGalleryImages", mock.Anything).Return(int64(30), nil)
	repo.On("CountPackages", mock.Anything, false).Return(int64(10), nil)
	repo.On("CountPackages", mock.Anything, true).Return(int64(7), nil)
	repo.On("BookingStatusBreakdown", mock.Anything).Return([]repositories.StatusCount{
		{Status: dbm.BookingPending, Count: 3},
		{Status: dbm.BookingConfirmed, Count: 5},
		{Status: dbm.BookingCancelled, Count: 2},
	}, nil)
	repo.On("ReviewStats", mock.Anything).Return(int64(9), 4.25, nil)
	repo.On("PaidRevenue", mock.Anything, int64(0), int64(0)).Return(int64(5000000), nil)

	start, end := utils.MonthBounds(svc.now(), time.UTC)
	repo.On("PaidRevenue", mock.Anything, start, end).Return(int64(1200000), nil)

	out, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(40), out.Users)
	assert.Equal(t, int64(7), out.ActivePackages)
	assert.Equal(t, int64(10), out.Bookings)
	assert.Equal(t, int64(5), out.BookingsBy.Confirmed)
	assert.Equal(t, int64(0), out.BookingsBy.Completed)
	assert.Equal(t, 4.25, out.AverageRating)
	assert.Equal(t, int64(5000000), out.TotalRevenue)
	assert.Equal(t, int64(1200000), out.CurrentMonthRevenue)
	assert.Equal(t, "INR", out.Currency)
	repo.AssertExpectations(t)
}

func TestDashboardService_MonthlyRevenue(t *testing.T) {
	repo := new(mocks.ReportRepo)
	svc := newDashboard(repo, "Asia/Kolkata")
	loc := utils.LoadLocation("Asia/Kolkata")
	start, end := utils.YearBounds(2024, loc)

	repo.On("MonthlyRevenue", mock.Anything, start, end, loc.String()).Return([]repositories.MonthBucket{
		{Month: 2, Revenue: 300, Bookings: 1},
		{Month: 11, Revenue: 700, Bookings: 2},
	}, nil)

	out, err := svc.MonthlyRevenue(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 2024, out.Year)
	require.Len(t, out.Months, 12)
	assert.Equal(t, "Jan", out.Months[0].Label)
	assert.Equal(t, int64(0), out.Months[0].Revenue)
	assert.Equal(t, int64(300), out.Months[1].Revenue)
	assert.Equal(t, int64(2), out.Months[10].Bookings)
	assert.Equal(t, "Dec", out.Months[11].Label)
	assert.Equal(t, int64(1000), out.Total)

	_, err = svc.MonthlyRevenue(context.Background(), 1850)
	assert.ErrorIs(t, err, utils.ErrInvalidDateRange)
}

func TestDashboardService_TopPackagesClampsLimit(t *testing.T) {
	repo := new(mocks.ReportRepo)
	svc := newDashboard(repo, "UTC")
	repo.On("TopPackages", mock.Anything, DefaultTopPackages).Return(nil, nil)
	repo.On("TopPackages", mock.Anything, MaxDashboardLimit).Return([]resp.TopPackage{{Title: "A"}}, nil)

	out, err := svc.TopPackages(context.Background(), 0)
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)

	out, err = svc.TopPackages(context.Background(), 500)
	require.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestDashboardService_RecentActivity(t *testing.T) {
	repo := new(mocks.ReportRepo)
	svc := newDashboard(repo, "UTC")

	at := func(min int) int64 { return time.Date(2024, 3, 15, 9, min, 0, 0, time.UTC).Unix() }
	pkg := &dbm.Package{Title: "Golden Jaisalmer"}

	booking := dbm.Booking{Status: dbm.BookingPending, Travelers: 2, Package: pkg, User: &dbm.User{Name: "Ravi"}}
	booking.ID, booking.CreatedAt = uuid.New(), at(30)
	review := dbm.Review{Rating: 5, Title: "Superb", Status: dbm.ReviewApproved, Package: pkg}
	review.ID, review.CreatedAt = uuid.New(), at(45)
	oldUser := dbm.User{Name: "Meera", Email: "meera@example.com", Role: dbm.RoleUser}
	oldUser.ID, oldUser.CreatedAt = uuid.New(), at(5)
	newUser := dbm.User{Name: "Kabir", Email: "kabir@example.com", Role: dbm.RoleUser}
	newUser.ID, newUser.CreatedAt = uuid.New(), at(50)

	repo.On("RecentBookings", mock.Anything, 3).Return([]dbm.Booking{booking}, nil)
	repo.On("RecentReviews", mock.Anything, 3).Return([]dbm.Review{review}, nil)
	repo.On("RecentUsers", mock.Anything, 3).Return([]dbm.User{newUser, oldUser}, nil)

	items, err := svc.RecentActivity(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, resp.ActivitySignup, items[0].Type)
	assert.Equal(t, "Kabir signed up", items[0].Title)
	assert.Equal(t, resp.ActivityReview, items[1].Type)
	assert.Equal(t, "Someone reviewed Golden Jaisalmer", items[1].Title)
	assert.Equal(t, resp.ActivityBooking, items[2].Type)
	assert.Equal(t, "Ravi booked Golden Jaisalmer", items[2].Title)
}
