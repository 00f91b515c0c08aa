package dto

import (
	"strconv"
	"strings"
	"time"

	"github.com/autoservis/orders-api/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Filter query parameters for GET /orders
const (
	FilterParamSearch    = "search"
	FilterParamStatus    = "status"
	FilterParamCategory  = "category"
	FilterParamDateFrom  = "date_from"
	FilterParamDateTo    = "date_to"
	FilterParamPriceFrom = "price_from"
	FilterParamPriceTo   = "price_to"
)

// Accepted date layouts, tried in order. Bare dates come from the
// front-end's date pickers, the timestamp layouts from API clients.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// OrderFilter holds the optional listing predicates. A nil pointer (or empty
// Search) means the predicate is not applied.
type OrderFilter struct {
	Search     string
	StatusID   *uint
	CategoryID *uint
	DateFrom   *time.Time
	DateTo     *time.Time
	PriceFrom  *float64
	PriceTo    *float64
}

// ParseOrderFilter parses the optional filter parameters of a list request.
// Each parameter is parsed independently: a malformed value drops that single
// predicate with a warning and never fails the request. Mutation payloads are
// validated strictly elsewhere; this leniency is intentional and applies to
// the read side only.
func ParseOrderFilter(c *gin.Context) OrderFilter {
	var f OrderFilter

	// Whitespace-only search means no search
	f.Search = strings.TrimSpace(c.Query(FilterParamSearch))

	f.StatusID = parseIDParam(c, FilterParamStatus)
	f.CategoryID = parseIDParam(c, FilterParamCategory)

	f.DateFrom = parseDateParam(c, FilterParamDateFrom, false)
	f.DateTo = parseDateParam(c, FilterParamDateTo, true)

	f.PriceFrom = parsePriceParam(c, FilterParamPriceFrom)
	f.PriceTo = parsePriceParam(c, FilterParamPriceTo)

	return f
}

func parseIDParam(c *gin.Context, name string) *uint {
	value := strings.TrimSpace(c.Query(name))
	if value == "" {
		return nil
	}

	id, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		logger.GetLogger().Warn("Ignoring malformed id filter",
			zap.String("param", name),
			zap.String("value", value),
			zap.Error(err),
		)
		return nil
	}

	parsed := uint(id)
	return &parsed
}

// parseDateParam accepts bare dates and full timestamps. A bare upper-bound
// date is promoted to 23:59:59 so the whole day stays inclusive.
func parseDateParam(c *gin.Context, name string, endOfDay bool) *time.Time {
	value := strings.TrimSpace(c.Query(name))
	if value == "" {
		return nil
	}

	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		if endOfDay && layout == "2006-01-02" {
			parsed = parsed.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
		}
		parsed = parsed.UTC()
		return &parsed
	}

	logger.GetLogger().Warn("Ignoring malformed date filter",
		zap.String("param", name),
		zap.String("value", value),
	)
	return nil
}

func parsePriceParam(c *gin.Context, name string) *float64 {
	value := strings.TrimSpace(c.Query(name))
	if value == "" {
		return nil
	}

	// Accept comma as decimal separator
	normalized := strings.ReplaceAll(value, ",", ".")

	price, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		logger.GetLogger().Warn("Ignoring malformed price filter",
			zap.String("param", name),
			zap.String("value", value),
			zap.Error(err),
		)
		return nil
	}

	return &price
}
