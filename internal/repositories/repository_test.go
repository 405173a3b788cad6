package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/models/db_models"
)

func newMockDB(t *testing.T) (*gorm.DB, *goqu.Database, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, goqu.New("postgres", sqlDB), mock
}

func TestHotelRepository_ListWithSearch(t *testing.T) {
	db, _, mock := newMockDB(t)
	repo := NewHotelRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "hotels" WHERE \(+name ILIKE \$1 OR city ILIKE \$2 OR country ILIKE \$3\)+ AND "hotels"."deleted_at" IS NULL`).
		WithArgs("%goa%", "%goa%", "%goa%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "hotels" WHERE .*ORDER BY created_at DESC, id DESC LIMIT \$4`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "city", "amenities", "star_rating"}).
			AddRow(uuid.NewString(), "Taj Fort Aguada", "Goa", "{wifi,pool}", 5))

	hotels, total, err := repo.List(context.Background(), ListQuery{Page: 1, Limit: 10, Search: "goa"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, hotels, 1)
	assert.Equal(t, "Taj Fort Aguada", hotels[0].Name)
	assert.Equal(t, []string{"wifi", "pool"}, []string(hotels[0].Amenities))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHotelRepository_ListEmptySkipsSelect(t *testing.T) {
	db, _, mock := newMockDB(t)
	repo := NewHotelRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "hotels"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	hotels, total, err := repo.List(context.Background(), ListQuery{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, hotels)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHotelRepository_FindByIDMissing(t *testing.T) {
	db, _, mock := newMockDB(t)
	repo := NewHotelRepository(db)
	id := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "hotels" WHERE id = \$1`).
		WithArgs(id, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	hotel, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, hotel)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHotelRepository_Create(t *testing.T) {
	db, _, mock := newMockDB(t)
	repo := NewHotelRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "hotels"`).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	hotel := &db_models.Hotel{Name: "Leela", City: "Udaipur", StarRating: 5, Currency: "INR"}
	require.NoError(t, repo.Create(context.Background(), hotel))
	assert.NotEqual(t, uuid.Nil, hotel.ID)
	assert.NotZero(t, hotel.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHotelRepository_SoftDelete(t *testing.T) {
	db, _, mock := newMockDB(t)
	repo := NewHotelRepository(db)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "hotels" SET "deleted_at"=\$1 WHERE id = \$2`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail(t *testing.T) {
	db, _, mock := newMockDB(t)
	repo := NewUserRepository(db)
	id := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WithArgs("admin@musafir.in", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "role"}).
			AddRow(id.String(), "Admin", "admin@musafir.in", "admin"))

	user, err := repo.FindByEmail(context.Background(), "admin@musafir.in")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "admin", user.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPackageRepository_CreateReplacesRelations(t *testing.T) {
	db, _, mock := newMockDB(t)
	repo := NewPackageRepository(db)

	hotelID, locationID := uuid.New(), uuid.New()
	pkg := &db_models.Package{
		Title:        "Goa Getaway",
		Slug:         "goa-getaway",
		DurationDays: 3,
		Price:        1500000,
		Currency:     "INR",
		MaxGroupSize: 10,
		Hotels:       []db_models.Hotel{{BaseModel: db_models.BaseModel{ID: hotelID}}},
		Itinerary: []db_models.ItineraryDay{
			{Day: 1, Title: "Arrival", LocationID: locationID},
		},
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "packages"`).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`DELETE FROM package_hotels WHERE package_id = \$1`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO "package_hotels"`).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`DELETE FROM package_food_options WHERE package_id = \$1`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "itinerary_days" WHERE package_id = \$1`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO "itinerary_days"`).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Create(context.Background(), pkg))
	assert.Equal(t, pkg.ID, pkg.Itinerary[0].PackageID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPackageRepository_SlugExistsIncludesDeleted(t *testing.T) {
	db, _, mock := newMockDB(t)
	repo := NewPackageRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "packages" WHERE slug = \$1 AND id <> \$2$`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.SlugExists(context.Background(), "goa-getaway", uuid.Nil)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_FilterScope(t *testing.T) {
	db, _, mock := newMockDB(t)
	repo := NewBookingRepository(db)
	pkgID := uuid.New()
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "bookings" WHERE bookings.status = \$1 AND bookings.package_id = \$2 AND bookings.travel_date >= \$3`).
		WithArgs(db_models.BookingConfirmed, pkgID, from).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	_, total, err := repo.List(context.Background(), ListQuery{
		Page:  1,
		Limit: 10,
		Scopes: []func(*gorm.DB) *gorm.DB{
			BookingFilterScope(BookingCriteria{Status: db_models.BookingConfirmed, PackageID: &pkgID, From: &from}),
		},
	})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_CountByPackage(t *testing.T) {
	db, _, mock := newMockDB(t)
	repo := NewBookingRepository(db)
	pkgID := uuid.New()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "bookings" WHERE package_id = \$1`).
		WithArgs(pkgID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	n, err := repo.CountByPackage(context.Background(), pkgID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
