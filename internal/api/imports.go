package api

import (
	"context"
	"fmt"
	"io"

	"github.com/bayuwidiasantoso/gudang/pkg/model"
)

// ImportBarang uploads a CSV of inventory items.
func (c *Client) ImportBarang(ctx context.Context, filename string, file io.Reader) (*model.ImportResponse, error) {
	var resp model.ImportResponse
	if err := c.upload(ctx, "/imports/barang", filename, file, &resp); err != nil {
		return nil, fmt.Errorf("import barang: %w", err)
	}
	return &resp, nil
}

// ImportTransaksi uploads a CSV of stock movements.
func (c *Client) ImportTransaksi(ctx context.Context, filename string, file io.Reader) (*model.ImportResponse, error) {
	var resp model.ImportResponse
	if err := c.upload(ctx, "/imports/transaksi", filename, file, &resp); err != nil {
		return nil, fmt.Errorf("import transaksi: %w", err)
	}
	return &resp, nil
}
