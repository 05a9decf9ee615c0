package model

import (
	"net/url"
	"strconv"
)

// Envelope carries the fields present on every backend response.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Meta holds pagination metadata for paginated endpoints.
type Meta struct {
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
	LastPage    int `json:"last_page"`
}

// LoginResponse is returned by POST /auth/login.
type LoginResponse struct {
	Envelope
	Token string `json:"token"`
	User  User   `json:"user"`
}

// MeResponse is returned by GET /auth/me.
type MeResponse struct {
	Success bool `json:"success"`
	User    User `json:"user"`
}

// BarangResponse wraps a single item.
type BarangResponse struct {
	Envelope
	Data Barang `json:"data"`
}

// BarangListResponse wraps an item list.
type BarangListResponse struct {
	Envelope
	Data []Barang `json:"data"`
}

// BarangDetailResponse wraps an item plus its movement history.
type BarangDetailResponse struct {
	Envelope
	Data BarangDetail `json:"data"`
}

// TransaksiResponse wraps a single stock movement.
type TransaksiResponse struct {
	Envelope
	Data TransaksiBarang `json:"data"`
}

// TransaksiListResponse wraps a paginated stock movement list.
type TransaksiListResponse struct {
	Envelope
	Data []TransaksiBarang `json:"data"`
	Meta Meta              `json:"meta"`
}

// DashboardSummary aggregates the landing page figures.
type DashboardSummary struct {
	TotalBarang        int         `json:"total_barang"`
	TotalStok          int         `json:"total_stok"`
	TotalMasukHariIni  int         `json:"total_masuk_hari_ini"`
	TotalKeluarHariIni int         `json:"total_keluar_hari_ini"`
	TopBarang          []TopBarang `json:"top_barang"`
}

// TopBarang is a most-moved item entry on the dashboard.
type TopBarang struct {
	BarangID   int    `json:"barang_id"`
	NamaBarang string `json:"nama_barang"`
	SKU        string `json:"sku"`
	TotalQty   int    `json:"total_qty"`
}

// SummaryResponse wraps the dashboard summary.
type SummaryResponse struct {
	Envelope
	Data DashboardSummary `json:"data"`
}

// TimeSeries holds daily inbound/outbound totals, one point per label.
type TimeSeries struct {
	Labels []string `json:"labels"`
	Masuk  []int    `json:"masuk"`
	Keluar []int    `json:"keluar"`
}

// TimeSeriesResponse wraps the dashboard time series.
type TimeSeriesResponse struct {
	Envelope
	Data TimeSeries `json:"data"`
}

// LowStockMeta extends pagination with the report mode fields.
type LowStockMeta struct {
	Meta
	Mode      *string `json:"mode"`
	Threshold *int    `json:"threshold"`
}

// LowStockResponse wraps the low-stock report.
type LowStockResponse struct {
	Envelope
	Data []Barang     `json:"data"`
	Meta LowStockMeta `json:"meta"`
}

// LowStockParams holds the query parameters of the low-stock report.
// A nil Threshold uses each item's own stok_minimum.
type LowStockParams struct {
	Threshold *int
	Page      int
	PerPage   int
}

// Query encodes the parameters as URL query parameters.
func (p LowStockParams) Query() url.Values {
	q := url.Values{}
	if p.Threshold != nil {
		q.Set("threshold", strconv.Itoa(*p.Threshold))
	}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(p.PerPage))
	}
	return q
}

// ActivityLogListResponse wraps a paginated activity log list.
type ActivityLogListResponse struct {
	Envelope
	Data []ActivityLog `json:"data"`
	Meta Meta          `json:"meta"`
}

// ImportResponse wraps the result of a CSV import. The data shape varies by
// import type, so it is kept loose.
type ImportResponse struct {
	Envelope
	Data any `json:"data,omitempty"`
}
