package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// ParsePagination reads ?page= and ?limit= (pageSize is accepted as an alias).
func ParsePagination(c *gin.Context) (int, int, error) {
	page, err := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(DefaultPage)))
	if err != nil || page < 1 {
		return 0, 0, ErrInvalidPage
	}

	raw := c.Query("limit")
	if raw == "" {
		raw = c.DefaultQuery("pageSize", strconv.Itoa(DefaultLimit))
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 || limit > MaxLimit {
		return 0, 0, ErrInvalidPageSize
	}
	return page, limit, nil
}

// ParseLimit reads a bounded ?limit= used by top-N style endpoints.
func ParseLimit(c *gin.Context, def, max int) (int, error) {
	raw := c.Query("limit")
	if raw == "" {
		return def, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 || limit > max {
		return 0, fmt.Errorf("%w: must be between 1 and %d", ErrInvalidLimit, max)
	}
	return limit, nil
}

func Offset(page, limit int) int {
	return (page - 1) * limit
}

func TotalPages(total int64, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
