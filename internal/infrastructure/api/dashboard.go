package api

import (
	"context"
	"net/http"

	"github.com/wholesalemart/orderdesk/internal/core/ports"
)

// Stats fetches the admin KPI summary: headline numbers, recent orders, low
// stock alerts and the seven-day revenue trend.
func (c *Client) Stats(ctx context.Context) (*ports.DashboardStats, error) {
	var stats ports.DashboardStats
	if err := c.do(ctx, epDashboard, http.MethodGet, "/dashboard/stats", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
