package model

import (
	"net/url"
	"strconv"
)

// Jenis is the direction of a stock movement.
type Jenis string

const (
	// JenisMasuk is an inbound movement (stock received).
	JenisMasuk Jenis = "MASUK"
	// JenisKeluar is an outbound movement (stock issued).
	JenisKeluar Jenis = "KELUAR"
)

// TransaksiBarang is a stock movement record.
type TransaksiBarang struct {
	ID         int        `json:"id"`
	BarangID   int        `json:"barang_id"`
	Jenis      Jenis      `json:"jenis"`
	Qty        int        `json:"qty"`
	Tanggal    string     `json:"tanggal"`
	Keterangan *string    `json:"keterangan"`
	CreatedAt  string     `json:"created_at"`
	UpdatedAt  string     `json:"updated_at"`
	Barang     *BarangRef `json:"barang,omitempty"`
}

// TransaksiInput is the payload for recording a stock movement.
type TransaksiInput struct {
	BarangID   int    `json:"barang_id"`
	Jenis      Jenis  `json:"jenis"`
	Qty        int    `json:"qty"`
	Tanggal    string `json:"tanggal,omitempty"`
	Keterangan string `json:"keterangan,omitempty"`
}

// TransaksiFilter holds the query parameters of the transaction list endpoint.
// Zero values are omitted from the query string.
type TransaksiFilter struct {
	Jenis       Jenis
	TanggalFrom string
	TanggalTo   string
	BarangID    int
	Page        int
	PerPage     int
	SortBy      string // tanggal, qty or jenis
	SortDir     string // asc or desc
}

// Query encodes the filter as URL query parameters.
func (f TransaksiFilter) Query() url.Values {
	q := url.Values{}
	if f.Jenis != "" {
		q.Set("jenis", string(f.Jenis))
	}
	if f.TanggalFrom != "" {
		q.Set("tanggal_from", f.TanggalFrom)
	}
	if f.TanggalTo != "" {
		q.Set("tanggal_to", f.TanggalTo)
	}
	if f.BarangID > 0 {
		q.Set("barang_id", strconv.Itoa(f.BarangID))
	}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(f.PerPage))
	}
	if f.SortBy != "" {
		q.Set("sort_by", f.SortBy)
	}
	if f.SortDir != "" {
		q.Set("sort_dir", f.SortDir)
	}
	return q
}
