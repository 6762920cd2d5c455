package queries

import (
	"errors"
	"time"

	"urbanmart/internal/core/domain/model/kernel"
	"urbanmart/internal/pkg/guard"
)

var ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
)

var ErrGetMerchantOrdersQueryIsNotConstructed = errors.New(
	"GetMerchantOrdersQuery must be created via NewGetMerchantOrdersQuery constructor",
)

// GetCustomerOrdersQuery lists a customer's orders, newest first.
type GetCustomerOrdersQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates a customer order listing query.
func NewGetCustomerOrdersQuery(customerID kernel.UUID) (GetCustomerOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerOrdersQuery{}, err
	}

	return GetCustomerOrdersQuery{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer whose orders are listed.
func (q GetCustomerOrdersQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// GetMerchantOrdersQuery lists a merchant's incoming orders, newest first,
// optionally filtered by status.
type GetMerchantOrdersQuery struct {
	merchantID kernel.UUID
	status     string

	guard guard.ConstructorGuard
}

// NewGetMerchantOrdersQuery creates a merchant order listing query. An empty
// status means no filter.
func NewGetMerchantOrdersQuery(merchantID kernel.UUID, status string) (GetMerchantOrdersQuery, error) {
	if err := merchantID.Validate(); err != nil {
		return GetMerchantOrdersQuery{}, err
	}

	return GetMerchantOrdersQuery{
		merchantID: merchantID,
		status:     status,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMerchantOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetMerchantOrdersQueryIsNotConstructed)
}

// MerchantID returns the merchant whose orders are listed.
func (q GetMerchantOrdersQuery) MerchantID() kernel.UUID {
	return q.merchantID
}

// Status returns the status filter, empty when unfiltered.
func (q GetMerchantOrdersQuery) Status() string {
	return q.status
}

// OrderSummaryResponse represents one order in a listing.
type OrderSummaryResponse struct {
	ID             string     `json:"id"`
	CustomerID     string     `json:"customerId"`
	MerchantID     string     `json:"merchantId"`
	Status         string     `json:"status"`
	Total          float64    `json:"total"`
	ItemCount      int        `json:"itemCount"`
	TrackingNumber string     `json:"trackingNumber,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	ShippedAt      *time.Time `json:"shippedAt,omitempty"`
	DeliveredAt    *time.Time `json:"deliveredAt,omitempty"`
}
