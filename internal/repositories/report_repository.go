package repositories

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	"gorm.io/gorm"

	dbm "github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/models/db_models"
	resp "github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/models/response_models"
)

type ReportRepository interface {
	// Counts
	CountUsers(ctx context.Context) (int64, error)
	CountHotels(ctx context.Context) (int64, error)
	CountLocations(ctx context.Context) (int64, error)
	CountFoodOptions(ctx context.Context) (int64, error)
	CountPackages(ctx context.Context, activeOnly bool) (int64, error)
	CountGalleryImages(ctx context.Context) (int64, error)
	BookingStatusBreakdown(ctx context.Context) ([]StatusCount, error)
	ReviewStats(ctx context.Context) (int64, float64, error)

	// Revenue, paid bookings only. Bounds are unix seconds, [start, end).
	PaidRevenue(ctx context.Context, start, end int64) (int64, error)
	MonthlyRevenue(ctx context.Context, start, end int64, tz string) ([]MonthBucket, error)

	TopPackages(ctx context.Context, limit int) ([]resp.TopPackage, error)

	// Recent activity
	RecentBookings(ctx context.Context, limit int) ([]dbm.Booking, error)
	RecentReviews(ctx context.Context, limit int) ([]dbm.Review, error)
	RecentUsers(ctx context.Context, limit int) ([]dbm.User, error)
}

type reportRepository struct {
	db *gorm.DB
	qb *goqu.Database
}

func NewReportRepository(db *gorm.DB, qb *goqu.Database) ReportRepository {
	return &reportRepository{db: db, qb: qb}
}

// ---------- Row helpers ----------
type StatusCount struct {
	Status string `gorm:"column:status"`
	Count  int64  `gorm:"column:count"`
}

type MonthBucket struct {
	Month    int   `db:"month"`
	Revenue  int64 `db:"revenue"`
	Bookings int64 `db:"bookings"`
}

// ---------- Counts ----------
func (r *reportRepository) count(ctx context.Context, model interface{}) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(model).Count(&n).Error
	return n, err
}

func (r *reportRepository) CountUsers(ctx context.Context) (int64, error) {
	return r.count(ctx, &dbm.User{})
}

func (r *reportRepository) CountHotels(ctx context.Context) (int64, error) {
	return r.count(ctx, &dbm.Hotel{})
}

func (r *reportRepository) CountLocations(ctx context.Context) (int64, error) {
	return r.count(ctx, &dbm.Location{})
}

func (r *reportRepository) CountFoodOptions(ctx context.Context) (int64, error) {
	return r.count(ctx, &dbm.FoodOption{})
}

func (r *reportRepository) CountGalleryImages(ctx context.Context) (int64, error) {
	return r.count(ctx, &dbm.GalleryImage{})
}

func (r *reportRepository) CountPackages(ctx context.Context, activeOnly bool) (int64, error) {
	var n int64
	tx := r.db.WithContext(ctx).Model(&dbm.Package{})
	if activeOnly {
		tx = tx.Where("active = ?", true)
	}
	err := tx.Count(&n).Error
	return n, err
}

func (r *reportRepository) BookingStatusBreakdown(ctx context.Context) ([]StatusCount, error) {
	var rows []StatusCount
	err := r.db.WithContext(ctx).
		Model(&dbm.Booking{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	return rows, err
}

// ReviewStats returns the review count and average rating.
func (r *reportRepository) ReviewStats(ctx context.Context) (int64, float64, error) {
	var row struct {
		Count   int64   `gorm:"column:count"`
		Average float64 `gorm:"column:average"`
	}
	err := r.db.WithContext(ctx).
		Model(&dbm.Review{}).
		Select("COUNT(*) AS count, COALESCE(AVG(rating), 0)::float8 AS average").
		Scan(&row).Error
	return row.Count, row.Average, err
}

// ---------- Revenue ----------
func (r *reportRepository) PaidRevenue(ctx context.Context, start, end int64) (int64, error) {
	var sum int64
	tx := r.db.WithContext(ctx).
		Model(&dbm.Booking{}).
		Select("COALESCE(SUM(total_amount), 0)::bigint").
		Where("payment_status = ?", dbm.PaymentPaid)
	if end > start {
		tx = tx.Where("paid_at >= ? AND paid_at < ?", start, end)
	}
	err := tx.Scan(&sum).Error
	return sum, err
}

// MonthlyRevenue buckets paid bookings by the month of paid_at in tz.
// Months without payments are absent from the result.
func (r *reportRepository) MonthlyRevenue(ctx context.Context, start, end int64, tz string) ([]MonthBucket, error) {
	rows := []MonthBucket{}
	err := r.qb.From(goqu.T("bookings").As("b")).
		Select(
			goqu.L("EXTRACT(MONTH FROM timezone(?, to_timestamp(b.paid_at)))::int", tz).As("month"),
			goqu.L("COALESCE(SUM(b.total_amount), 0)::bigint").As("revenue"),
			goqu.COUNT(goqu.Star()).As("bookings"),
		).
		Where(
			goqu.I("b.deleted_at").IsNull(),
			goqu.I("b.payment_status").Eq(dbm.PaymentPaid),
			goqu.I("b.paid_at").Gte(start),
			goqu.I("b.paid_at").Lt(end),
		).
		GroupBy(goqu.I("month")).
		Order(goqu.I("month").Asc()).
		ScanStructsContext(ctx, &rows)
	return rows, err
}

// ---------- Top packages ----------
func (r *reportRepository) TopPackages(ctx context.Context, limit int) ([]resp.TopPackage, error) {
	avgRating := r.qb.From(goqu.T("reviews").As("rv")).
		Select(goqu.AVG(goqu.I("rv.rating"))).
		Where(
			goqu.I("rv.package_id").Eq(goqu.I("p.id")),
			goqu.I("rv.deleted_at").IsNull(),
			goqu.I("rv.status").Neq(dbm.ReviewRejected),
		)

	// Cancelled bookings do not count as sales, but money they still hold as
	// paid is revenue, matching PaidRevenue.
	booked := goqu.L("COUNT(b.id) FILTER (WHERE b.status != ?)", dbm.BookingCancelled)
	paid := goqu.L("COALESCE(SUM(b.total_amount) FILTER (WHERE b.payment_status = ?), 0)::bigint", dbm.PaymentPaid)

	rows := []resp.TopPackage{}
	err := r.qb.From(goqu.T("packages").As("p")).
		Join(goqu.T("bookings").As("b"), goqu.On(
			goqu.I("b.package_id").Eq(goqu.I("p.id")),
			goqu.I("b.deleted_at").IsNull(),
		)).
		Select(
			goqu.L("p.id::text").As("package_id"),
			goqu.I("p.title").As("title"),
			goqu.I("p.destination").As("destination"),
			booked.As("bookings"),
			paid.As("revenue"),
			goqu.Cast(goqu.COALESCE(avgRating, 0), "float8").As("average_rating"),
		).
		Where(goqu.I("p.deleted_at").IsNull()).
		GroupBy(goqu.I("p.id"), goqu.I("p.title"), goqu.I("p.destination")).
		Having(goqu.Or(booked.Gt(0), paid.Gt(0))).
		Order(goqu.I("bookings").Desc(), goqu.I("revenue").Desc(), goqu.I("p.id").Asc()).
		Limit(uint(limit)).
		ScanStructsContext(ctx, &rows)
	return rows, err
}

// ---------- Recent activity ----------
func (r *reportRepository) RecentBookings(ctx context.Context, limit int) ([]dbm.Booking, error) {
	var rows []dbm.Booking
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Package").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *reportRepository) RecentReviews(ctx context.Context, limit int) ([]dbm.Review, error) {
	var rows []dbm.Review
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Package").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *reportRepository) RecentUsers(ctx context.Context, limit int) ([]dbm.User, error) {
	var rows []dbm.User
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}
