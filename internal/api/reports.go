package api

import (
	"context"
	"fmt"

	"github.com/bayuwidiasantoso/gudang/pkg/model"
)

// DashboardSummary fetches the landing page aggregates.
func (c *Client) DashboardSummary(ctx context.Context) (*model.SummaryResponse, error) {
	var resp model.SummaryResponse
	if err := c.get(ctx, "/dashboard/summary", &resp); err != nil {
		return nil, fmt.Errorf("dashboard summary: %w", err)
	}
	return &resp, nil
}

// DashboardTimeSeries fetches daily inbound/outbound totals for the last
// days days.
func (c *Client) DashboardTimeSeries(ctx context.Context, days int) (*model.TimeSeriesResponse, error) {
	var resp model.TimeSeriesResponse
	if err := c.get(ctx, fmt.Sprintf("/dashboard/time-series?days=%d", days), &resp); err != nil {
		return nil, fmt.Errorf("dashboard time series: %w", err)
	}
	return &resp, nil
}

// LowStock fetches the low-stock report.
func (c *Client) LowStock(ctx context.Context, p model.LowStockParams) (*model.LowStockResponse, error) {
	path := "/laporan/stok-rendah"
	if q := p.Query().Encode(); q != "" {
		path += "?" + q
	}

	var resp model.LowStockResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, fmt.Errorf("low stock report: %w", err)
	}
	return &resp, nil
}

// ActivityLogs fetches audit trail entries matching the filter.
func (c *Client) ActivityLogs(ctx context.Context, f model.ActivityLogFilter) (*model.ActivityLogListResponse, error) {
	path := "/activity-logs"
	if q := f.Query().Encode(); q != "" {
		path += "?" + q
	}

	var resp model.ActivityLogListResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, fmt.Errorf("activity logs: %w", err)
	}
	return &resp, nil
}
