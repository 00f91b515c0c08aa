package constants

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// Pagination Query Parameters
const (
	QueryParamPage    = "page"
	QueryParamPerPage = "per_page"
	QueryParamSearch  = "search"
)

// Default Pagination Values (as strings for query parsing)
const (
	DefaultPage    = "1"
	DefaultPerPage = "10"
	DefaultSearch  = ""
)

// Pagination Limits (as integers for validation)
const (
	MinPage    = 1
	MinPerPage = 1
	MaxPerPage = 100
)

// PaginationParams holds the sanitized page window for a list request.
type PaginationParams struct {
	Page    int // Page number from user request (default: 1)
	PerPage int // Page size from user request, clamped to [1,100]
	Offset  int // Calculated offset (page - 1) * per_page
}

// ParsePaginationParams parses and clamps page/per_page query parameters.
// Malformed values fall back to the defaults rather than failing.
func ParsePaginationParams(c *gin.Context) PaginationParams {
	pageStr := c.DefaultQuery(QueryParamPage, DefaultPage)
	perPageStr := c.DefaultQuery(QueryParamPerPage, DefaultPerPage)

	page, err := strconv.Atoi(pageStr)
	if err != nil {
		page = MinPage
	}
	perPage, err := strconv.Atoi(perPageStr)
	if err != nil {
		perPage, _ = strconv.Atoi(DefaultPerPage)
	}

	if page < MinPage {
		page = MinPage
	}
	if perPage < MinPerPage {
		perPage = MinPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}

	return PaginationParams{
		Page:    page,
		PerPage: perPage,
		Offset:  (page - 1) * perPage,
	}
}

// TotalPages computes ceil(total/perPage); zero when nothing matched.
func TotalPages(total int64, perPage int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}
