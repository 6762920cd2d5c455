package queries

import (
	"errors"

	"urbanmart/internal/pkg/guard"
)

var ErrGetAdminStatsQueryIsNotConstructed = errors.New(
	"GetAdminStatsQuery must be created via NewGetAdminStatsQuery constructor",
)

// GetAdminStatsQuery retrieves platform-wide counters for the admin dashboard.
type GetAdminStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAdminStatsQuery creates an admin stats query.
func NewGetAdminStatsQuery() (GetAdminStatsQuery, error) {
	return GetAdminStatsQuery{guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAdminStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetAdminStatsQueryIsNotConstructed)
}

// GetAdminStatsQueryResponse represents platform-wide counters. Revenue sums
// delivered orders only.
type GetAdminStatsQueryResponse struct {
	TotalUsers      int64            `json:"totalUsers"`
	UsersByRole     map[string]int64 `json:"usersByRole"`
	TotalOrders     int64            `json:"totalOrders"`
	OrdersByStatus  map[string]int64 `json:"ordersByStatus"`
	TotalRevenue    float64          `json:"totalRevenue"`
	TotalProducts   int64            `json:"totalProducts"`
	ActiveDelivery  int64            `json:"activeDeliveryAssignments"`
	PendingRequests int64            `json:"pendingHiringRequests"`
}
