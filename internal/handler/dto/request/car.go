package request

import (
	"strconv"
	"time"

	"car-rental-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CreateCarRequest struct {
	Name           string `json:"name" binding:"required"`
	Make           string `json:"make" binding:"required"`
	Model          string `json:"model" binding:"required"`
	Year           int    `json:"year" binding:"required"`
	Location       string `json:"location" binding:"required"`
	DailyRateCents int64  `json:"daily_rate_cents" binding:"required,gt=0"`
}

type UpdateCarRequest struct {
	Name           string `json:"name" binding:"required"`
	Make           string `json:"make" binding:"required"`
	Model          string `json:"model" binding:"required"`
	Year           int    `json:"year" binding:"required"`
	Location       string `json:"location" binding:"required"`
	DailyRateCents int64  `json:"daily_rate_cents" binding:"required,gt=0"`
}

type UpdateCarStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ParseCarSearchFilters reads the optional search filters from the query
// string. Malformed numbers and timestamps are treated as absent.
func ParseCarSearchFilters(c *gin.Context) queries.CarSearchFilters {
	filters := queries.CarSearchFilters{
		Location: c.Query("location"),
	}

	if v := c.Query("min_daily_cents"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			filters.MinDailyCents = n
		}
	}
	if v := c.Query("max_daily_cents"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			filters.MaxDailyCents = n
		}
	}
	if v := c.Query("available_from"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			filters.AvailableFrom = &t
		}
	}
	if v := c.Query("available_until"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			filters.AvailableUntil = &t
		}
	}

	return filters
}
