package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewRepository_SearchBuildsFacets(t *testing.T) {
	db, qb, mock := newMockDB(t)
	repo := NewReviewRepository(db, qb)
	pkgID := uuid.NewString()

	mock.ExpectQuery(`SELECT COUNT\(\*\) AS "total", COALESCE\(AVG\(r.rating\), 0\)::float8 AS "average" FROM "reviews" AS "r" LEFT JOIN "users" AS "u".*WHERE \(\("r"."deleted_at" IS NULL\) AND \("r"."rating" >= 4\) AND \("r"."status" = 'approved'\)\)`).
		WillReturnRows(sqlmock.NewRows([]string{"total", "average"}).AddRow(3, 4.33))
	mock.ExpectQuery(`SELECT r.id::text AS "id".*ORDER BY "r"."rating" DESC, "r"."created_at" DESC, "r"."id" DESC LIMIT 2`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "package_id", "package_title", "user_id", "user_name", "user_email", "booking_id", "rating", "title", "comment", "status", "created_at", "updated_at"}).
			AddRow(uuid.NewString(), pkgID, "Kerala Backwaters", uuid.NewString(), "Asha", "asha@example.com", nil, 5, "Superb", "Loved it", "approved", 1700000000, 1700000000).
			AddRow(uuid.NewString(), pkgID, "Kerala Backwaters", uuid.NewString(), "Ravi", "ravi@example.com", uuid.NewString(), 4, "Good", "Nice", "approved", 1700000100, 1700000100))
	mock.ExpectQuery(`SELECT "r"."rating" AS "rating", COUNT\(\*\) AS "count".*GROUP BY "r"."rating"`).
		WillReturnRows(sqlmock.NewRows([]string{"rating", "count"}).AddRow(5, 2).AddRow(4, 1))
	mock.ExpectQuery(`SELECT "r"."status" AS "status", COUNT\(\*\) AS "count".*GROUP BY "r"."status"`).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).AddRow("approved", 3))
	mock.ExpectQuery(`SELECT r.package_id::text AS "package_id".*GROUP BY "r"."package_id", "p"."title".*LIMIT 20`).
		WillReturnRows(sqlmock.NewRows([]string{"package_id", "title", "count"}).AddRow(pkgID, "Kerala Backwaters", 3))

	res, err := repo.Search(context.Background(), ReviewCriteria{
		Page:      1,
		Limit:     2,
		MinRating: 4,
		Status:    "approved",
		Sort:      "rating_high",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(3), res.Total)
	assert.InDelta(t, 4.33, res.Average, 0.001)
	require.Len(t, res.Items, 2)
	assert.Equal(t, "Asha", res.Items[0].UserName)
	assert.Nil(t, res.Items[0].BookingID)
	assert.NotNil(t, res.Items[1].BookingID)
	assert.Len(t, res.Facets.Ratings, 2)
	assert.Equal(t, "approved", res.Facets.Statuses[0].Status)
	assert.Equal(t, pkgID, res.Facets.Packages[0].PackageID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_SearchEmptySkipsItems(t *testing.T) {
	db, qb, mock := newMockDB(t)
	repo := NewReviewRepository(db, qb)

	mock.ExpectQuery(`SELECT COUNT\(\*\) AS "total".*ILIKE '%beach%'`).
		WillReturnRows(sqlmock.NewRows([]string{"total", "average"}).AddRow(0, 0))
	mock.ExpectQuery(`GROUP BY "r"."rating"`).WillReturnRows(sqlmock.NewRows([]string{"rating", "count"}))
	mock.ExpectQuery(`GROUP BY "r"."status"`).WillReturnRows(sqlmock.NewRows([]string{"status", "count"}))
	mock.ExpectQuery(`GROUP BY "r"."package_id"`).WillReturnRows(sqlmock.NewRows([]string{"package_id", "title", "count"}))

	res, err := repo.Search(context.Background(), ReviewCriteria{Page: 1, Limit: 10, Query: "beach"})
	require.NoError(t, err)
	assert.Empty(t, res.Items)
	assert.NotNil(t, res.Items)
	assert.Empty(t, res.Facets.Ratings)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewOrder(t *testing.T) {
	assert.Len(t, reviewOrder("oldest"), 2)
	assert.Len(t, reviewOrder("rating_low"), 3)
	assert.Len(t, reviewOrder(""), 2)

	for _, sort := range []string{"oldest", "rating_high", "rating_low", ""} {
		order := reviewOrder(sort)
		last := order[len(order)-1]
		assert.Equal(t, goqu.I("r.id"), last.SortExpression(), sort)
	}
}
