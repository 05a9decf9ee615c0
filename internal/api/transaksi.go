package api

import (
	"context"
	"fmt"

	"github.com/bayuwidiasantoso/gudang/pkg/model"
)

// ListTransaksi fetches stock movements matching the filter.
func (c *Client) ListTransaksi(ctx context.Context, f model.TransaksiFilter) (*model.TransaksiListResponse, error) {
	path := "/transaksi"
	if q := f.Query().Encode(); q != "" {
		path += "?" + q
	}

	var resp model.TransaksiListResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, fmt.Errorf("list transaksi: %w", err)
	}
	return &resp, nil
}

// CreateTransaksi records a stock movement.
func (c *Client) CreateTransaksi(ctx context.Context, in model.TransaksiInput) (*model.TransaksiResponse, error) {
	var resp model.TransaksiResponse
	if err := c.post(ctx, "/transaksi", in, &resp); err != nil {
		return nil, fmt.Errorf("create transaksi: %w", err)
	}
	return &resp, nil
}
