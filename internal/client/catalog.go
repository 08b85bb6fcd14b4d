// ABOUTME: Reference data and settings endpoints
// ABOUTME: Categories, administrative regions and rate-limit configuration

package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Categories returns the category taxonomy, nested under Children when tree is set
func (c *Client) Categories(ctx context.Context, tree bool) (*Envelope[[]Category], error) {
	q := url.Values{}
	q.Set("tree", strconv.FormatBool(tree))
	return do[[]Category](ctx, c, get("/api/categories", "/api/categories", q))
}

// Provinces returns provinces whose name matches search
func (c *Client) Provinces(ctx context.Context, search string) (*Envelope[[]Province], error) {
	q := newQuery().str("search", search).values()
	return do[[]Province](ctx, c, get("/api/regions/provinces", "/api/regions/provinces", q))
}

// Regencies returns regencies whose name matches search
func (c *Client) Regencies(ctx context.Context, search string) (*Envelope[[]Regency], error) {
	q := newQuery().str("search", search).values()
	return do[[]Regency](ctx, c, get("/api/regions/regencies", "/api/regions/regencies", q))
}

// RateLimits returns every rate-limit setting
func (c *Client) RateLimits(ctx context.Context) (*Envelope[[]RateLimitConfig], error) {
	return do[[]RateLimitConfig](ctx, c, get("/api/admin/rate-limits", "/api/admin/rate-limits", nil))
}

// RateLimit returns the setting stored under key
func (c *Client) RateLimit(ctx context.Context, key string) (*Envelope[RateLimitConfig], error) {
	return do[RateLimitConfig](ctx, c, get("/api/admin/rate-limits/{key}", pathID("/api/admin/rate-limits", key), nil))
}

// UpdateRateLimit sets the value stored under key. Values must be non-negative.
func (c *Client) UpdateRateLimit(ctx context.Context, key string, value int) (*Envelope[RateLimitConfig], error) {
	if err := ValidateRateLimitValue(value); err != nil {
		return nil, err
	}
	return do[RateLimitConfig](ctx, c, send(http.MethodPut, "/api/admin/rate-limits/{key}",
		pathID("/api/admin/rate-limits", key), UpdateRateLimitInput{Value: value}))
}

// ValidateRateLimitValue rejects values the settings screen would not submit
func ValidateRateLimitValue(value int) error {
	if value < 0 {
		return &ValidationError{Field: "value", Message: "Value must be a non-negative integer"}
	}
	return nil
}

// ParseRateLimitValue parses user input for a rate-limit value
func ParseRateLimitValue(text string) (int, error) {
	value, err := strconv.Atoi(text)
	if err != nil {
		return 0, &ValidationError{Field: "value", Message: "Value must be a non-negative integer"}
	}
	if err := ValidateRateLimitValue(value); err != nil {
		return 0, err
	}
	return value, nil
}
