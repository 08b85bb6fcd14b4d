// ABOUTME: Response envelope shared by every Balungpisah endpoint
// ABOUTME: Resolve folds an envelope and error into a single discriminated Result

package client

import (
	"encoding/json"
	"errors"
)

// Meta carries pagination totals for collection endpoints
type Meta struct {
	Total      int `json:"total"`
	Page       int `json:"page,omitempty"`
	PageSize   int `json:"page_size,omitempty"`
	TotalPages int `json:"total_pages"`
}

// UnmarshalJSON accepts total_items as an alias of total
func (m *Meta) UnmarshalJSON(data []byte) error {
	var raw struct {
		Total      *int `json:"total"`
		TotalItems *int `json:"total_items"`
		Page       int  `json:"page"`
		PageSize   int  `json:"page_size"`
		TotalPages int  `json:"total_pages"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*m = Meta{Page: raw.Page, PageSize: raw.PageSize, TotalPages: raw.TotalPages}
	switch {
	case raw.Total != nil:
		m.Total = *raw.Total
	case raw.TotalItems != nil:
		m.Total = *raw.TotalItems
	}
	return nil
}

// Envelope is the uniform wrapper around every API response body
type Envelope[T any] struct {
	Success bool     `json:"success"`
	Data    *T       `json:"data,omitempty"`
	Message string   `json:"message,omitempty"`
	Errors  []string `json:"errors,omitempty"`
	Meta    *Meta    `json:"meta,omitempty"`

	// StatusCode is the HTTP status the envelope arrived with
	StatusCode int `json:"-"`
}

// Value returns the payload when the envelope reports success and carries data
func (e *Envelope[T]) Value() (T, bool) {
	var zero T
	if e == nil || !e.Success || e.Data == nil {
		return zero, false
	}
	return *e.Data, true
}

// Kind discriminates the outcome of a client call
type Kind int

const (
	KindOK Kind = iota
	KindApplicationError
	KindTransportError
	KindUnauthorized
)

func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindApplicationError:
		return "application_error"
	case KindTransportError:
		return "transport_error"
	case KindUnauthorized:
		return "unauthorized"
	default:
		return "unknown"
	}
}

// Result is the resolved outcome of a single call
type Result[T any] struct {
	Kind     Kind
	Value    T
	HasValue bool
	Meta     *Meta
	Message  string
	Errors   []string
	Err      error
}

// Resolve converts a method's (envelope, error) pair into a Result.
// Validation failures are reported as transport-kind results since nothing
// reached the backend; callers that care can inspect Err.
func Resolve[T any](env *Envelope[T], err error) Result[T] {
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			return Result[T]{Kind: KindUnauthorized, Err: err, Message: err.Error()}
		}
		return Result[T]{Kind: KindTransportError, Err: err, Message: err.Error()}
	}
	if env == nil {
		return Result[T]{Kind: KindApplicationError}
	}
	if !env.Success {
		return Result[T]{
			Kind:    KindApplicationError,
			Message: env.Message,
			Errors:  env.Errors,
			Meta:    env.Meta,
		}
	}
	r := Result[T]{Kind: KindOK, Meta: env.Meta, Message: env.Message}
	if env.Data != nil {
		r.Value = *env.Data
		r.HasValue = true
	}
	return r
}

// FailureMessage picks the text to show for a failed result
func (r Result[T]) FailureMessage(fallback string) string {
	if r.Message != "" {
		return r.Message
	}
	if len(r.Errors) > 0 {
		return r.Errors[0]
	}
	return fallback
}
