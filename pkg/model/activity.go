package model

import (
	"net/url"
	"strconv"
)

// ActivityLog is an audit trail entry recorded by the backend.
type ActivityLog struct {
	ID          int     `json:"id"`
	UserID      *int    `json:"user_id"`
	Module      string  `json:"module"`
	Action      string  `json:"action"`
	Description *string `json:"description,omitempty"`
	Data        any     `json:"data,omitempty"`
	IPAddress   *string `json:"ip_address,omitempty"`
	UserAgent   *string `json:"user_agent,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// ActivityLogFilter holds the query parameters of the activity log endpoint.
type ActivityLogFilter struct {
	Module  string
	Action  string
	Search  string
	Page    int
	PerPage int
}

// Query encodes the filter as URL query parameters.
func (f ActivityLogFilter) Query() url.Values {
	q := url.Values{}
	if f.Module != "" {
		q.Set("module", f.Module)
	}
	if f.Action != "" {
		q.Set("action", f.Action)
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(f.PerPage))
	}
	return q
}
