package utils

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func jsonBody(s string) io.Reader { return strings.NewReader(s) }

func queryContext(rawQuery string) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/?"+rawQuery, nil)
	return c
}

func TestParsePagination(t *testing.T) {
	page, limit, err := ParsePagination(queryContext(""))
	require.NoError(t, err)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)

	page, limit, err = ParsePagination(queryContext("page=3&limit=25"))
	require.NoError(t, err)
	assert.Equal(t, 3, page)
	assert.Equal(t, 25, limit)

	_, limit, err = ParsePagination(queryContext("pageSize=50"))
	require.NoError(t, err)
	assert.Equal(t, 50, limit)

	_, _, err = ParsePagination(queryContext("page=0"))
	assert.ErrorIs(t, err, ErrInvalidPage)

	_, _, err = ParsePagination(queryContext("limit=101"))
	assert.ErrorIs(t, err, ErrInvalidPageSize)

	_, _, err = ParsePagination(queryContext("limit=abc"))
	assert.ErrorIs(t, err, ErrInvalidPageSize)
}

func TestParseLimit(t *testing.T) {
	limit, err := ParseLimit(queryContext(""), 5, 50)
	require.NoError(t, err)
	assert.Equal(t, 5, limit)

	_, err = ParseLimit(queryContext("limit=51"), 5, 50)
	assert.ErrorIs(t, err, ErrInvalidLimit)
	code, msg := StatusFor(err)
	assert.Equal(t, 400, code)
	assert.Equal(t, "Invalid limit: must be between 1 and 50", msg)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "goa-beach-escape", Slugify("  Goa Beach -- Escape! "))
	assert.Equal(t, "kerala-5n-6d", Slugify("Kerala (5N/6D)"))
	assert.Equal(t, "", Slugify("!!!"))
}

func TestSlugify_Transliterates(t *testing.T) {
	assert.Equal(t, "cafe-creme-tour", Slugify("Café Crème Tour"))

	hindi := Slugify("मनाली ट्रिप")
	assert.NotEmpty(t, hindi)
	assert.Regexp(t, `^[a-z0-9]+(-[a-z0-9]+)*$`, hindi)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\% off\_now`, EscapeLike("50% off_now"))
}

func TestPgErrors(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505"}
	assert.True(t, IsUniqueViolation(dup))
	assert.False(t, IsForeignKeyViolation(dup))
	assert.True(t, IsForeignKeyViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(gorm.ErrRecordNotFound))
}

func TestJWTManager_RoundTrip(t *testing.T) {
	m := NewJWTManager("0123456789abcdef-secret", time.Hour)
	id := uuid.New()

	token, exp, err := m.CreateToken(id, "admin")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, id.String(), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.NotEmpty(t, claims.ID)

	other := NewJWTManager("another-secret-entirely", time.Hour)
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTManager_Expired(t *testing.T) {
	m := NewJWTManager("0123456789abcdef-secret", -time.Minute)
	token, _, err := m.CreateToken(uuid.New(), "admin")
	require.NoError(t, err)

	_, err = m.ValidateToken(token)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	require.NoError(t, err)
	assert.NoError(t, ComparePasswords(hash, "s3cret!"))
	assert.Error(t, ComparePasswords(hash, "wrong"))
}

func TestYearBounds(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	start, end := YearBounds(2025, loc)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, loc).Unix(), start)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, loc).Unix(), end)
}

func TestLoadLocation_Fallback(t *testing.T) {
	assert.Equal(t, time.UTC, LoadLocation("Not/AZone"))
	assert.Equal(t, time.UTC, LoadLocation(""))
}
