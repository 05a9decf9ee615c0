package api

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/bayuwidiasantoso/gudang/pkg/model"
)

// ListBarang fetches all inventory items.
func (c *Client) ListBarang(ctx context.Context) (*model.BarangListResponse, error) {
	var resp model.BarangListResponse
	if err := c.get(ctx, "/barang", &resp); err != nil {
		return nil, fmt.Errorf("list barang: %w", err)
	}
	return &resp, nil
}

// CreateBarang registers a new inventory item.
func (c *Client) CreateBarang(ctx context.Context, in model.BarangInput) (*model.BarangResponse, error) {
	var resp model.BarangResponse
	if err := c.post(ctx, "/barang", in, &resp); err != nil {
		return nil, fmt.Errorf("create barang: %w", err)
	}
	return &resp, nil
}

// UpdateBarang replaces an item's fields.
func (c *Client) UpdateBarang(ctx context.Context, id int, in model.BarangInput) (*model.BarangResponse, error) {
	var resp model.BarangResponse
	if err := c.put(ctx, fmt.Sprintf("/barang/%d", id), in, &resp); err != nil {
		return nil, fmt.Errorf("update barang %d: %w", id, err)
	}
	return &resp, nil
}

// DeleteBarang removes an item.
func (c *Client) DeleteBarang(ctx context.Context, id int) error {
	if err := c.delete(ctx, fmt.Sprintf("/barang/%d", id), nil); err != nil {
		return fmt.Errorf("delete barang %d: %w", id, err)
	}
	return nil
}

// BarangDetail fetches an item together with its movement history.
func (c *Client) BarangDetail(ctx context.Context, id int) (*model.BarangDetailResponse, error) {
	var resp model.BarangDetailResponse
	if err := c.get(ctx, fmt.Sprintf("/barang/%d/detail", id), &resp); err != nil {
		return nil, fmt.Errorf("barang detail %d: %w", id, err)
	}
	return &resp, nil
}

// AutocompleteBarang searches items by name or SKU prefix. A blank query
// returns an empty result without a network call.
func (c *Client) AutocompleteBarang(ctx context.Context, q string) ([]model.Barang, error) {
	if strings.TrimSpace(q) == "" {
		return nil, nil
	}

	params := url.Values{}
	params.Set("q", q)

	var resp model.BarangListResponse
	if err := c.get(ctx, "/barang/autocomplete?"+params.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("autocomplete barang: %w", err)
	}
	return resp.Data, nil
}
