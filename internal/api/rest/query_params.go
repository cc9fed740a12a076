package rest

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-revshare/internal/api/shared/constants"
)

// ListDistributionsQueryParams holds query parameters for GET /distributions
type ListDistributionsQueryParams struct {
	// Pagination
	Limit  int    `form:"limit,default=20"`
	Offset uint64 `form:"offset,default=0"`
}

// RevenueBreakdownQueryParams holds query parameters for GET /revenue/breakdown
type RevenueBreakdownQueryParams struct {
	// Filters
	Sources []string `form:"source"`
	From    string   `form:"from"`
	To      string   `form:"to"`

	from *time.Time
	to   *time.Time
}

// ParseListDistributionsQuery parses query parameters for GET /distributions
func ParseListDistributionsQuery(c *gin.Context) (*ListDistributionsQueryParams, error) {
	var params ListDistributionsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	// Cap limits
	if params.Limit > constants.MAX_PAGE_SIZE {
		params.Limit = constants.MAX_PAGE_SIZE
	}

	return &params, nil
}

// Validate validates the pagination
func (p *ListDistributionsQueryParams) Validate() error {
	if p.Limit <= 0 {
		return fmt.Errorf("limit must be between 1 and %d", constants.MAX_PAGE_SIZE)
	}
	return nil
}

// ParseRevenueBreakdownQuery parses query parameters for GET /revenue/breakdown.
// Sources may be repeated or comma separated, bounds are RFC 3339 timestamps.
func ParseRevenueBreakdownQuery(c *gin.Context) (*RevenueBreakdownQueryParams, error) {
	var params RevenueBreakdownQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	params.Sources = splitValues(params.Sources)

	var err error
	if params.from, err = parseTime("from", params.From); err != nil {
		return nil, err
	}
	if params.to, err = parseTime("to", params.To); err != nil {
		return nil, err
	}

	return &params, nil
}

// Validate validates the filters
func (p *RevenueBreakdownQueryParams) Validate() error {
	if len(p.Sources) > constants.MAX_SOURCES_PER_REQUEST {
		return fmt.Errorf("at most %d sources are allowed", constants.MAX_SOURCES_PER_REQUEST)
	}
	if p.from != nil && p.to != nil && !p.from.Before(*p.to) {
		return errors.New("from must be before to")
	}
	return nil
}

// splitValues flattens comma separated values and drops the empty ones
func splitValues(values []string) []string {
	var result []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				result = append(result, part)
			}
		}
	}
	return result
}

func parseTime(name, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: expected an RFC 3339 timestamp", name)
	}
	return &t, nil
}
