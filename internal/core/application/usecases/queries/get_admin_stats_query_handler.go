package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAdminStatsQueryHandler aggregates platform-wide counters.
type GetAdminStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetAdminStatsQueryHandler creates a handler for admin stats queries.
func NewGetAdminStatsQueryHandler(db *gorm.DB) GetAdminStatsQueryHandler {
	return GetAdminStatsQueryHandler{db: db}
}

// Handle executes the admin stats query.
func (h GetAdminStatsQueryHandler) Handle(
	ctx context.Context,
	query GetAdminStatsQuery,
) (GetAdminStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAdminStatsQueryResponse{}, err
	}

	response := GetAdminStatsQueryResponse{
		UsersByRole:    make(map[string]int64),
		OrdersByStatus: make(map[string]int64),
	}

	if err := h.countByGroup(ctx, `SELECT role, COUNT(*) FROM users GROUP BY role`,
		response.UsersByRole, &response.TotalUsers); err != nil {
		return GetAdminStatsQueryResponse{}, err
	}

	if err := h.countByGroup(ctx, `SELECT status, COUNT(*) FROM orders GROUP BY status`,
		response.OrdersByStatus, &response.TotalOrders); err != nil {
		return GetAdminStatsQueryResponse{}, err
	}

	err := h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total), 0) FROM orders WHERE status = 'DELIVERED'
	`).Scan(&response.TotalRevenue).Error
	if err != nil {
		return GetAdminStatsQueryResponse{}, err
	}

	err = h.db.WithContext(ctx).Raw(`SELECT COUNT(*) FROM products`).
		Scan(&response.TotalProducts).Error
	if err != nil {
		return GetAdminStatsQueryResponse{}, err
	}

	err = h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM delivery_assignments
		WHERE status IN ('REQUESTED', 'ASSIGNED', 'IN_TRANSIT')
	`).Scan(&response.ActiveDelivery).Error
	if err != nil {
		return GetAdminStatsQueryResponse{}, err
	}

	err = h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM hiring_requests WHERE status = 'PENDING'
	`).Scan(&response.PendingRequests).Error
	if err != nil {
		return GetAdminStatsQueryResponse{}, err
	}

	return response, nil
}

func (h GetAdminStatsQueryHandler) countByGroup(
	ctx context.Context,
	sqlText string,
	groups map[string]int64,
	total *int64,
) error {
	rows, err := h.db.WithContext(ctx).Raw(sqlText).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			key   string
			count int64
		)
		if err = rows.Scan(&key, &count); err != nil {
			return err
		}
		groups[key] = count
		*total += count
	}
	return rows.Err()
}
