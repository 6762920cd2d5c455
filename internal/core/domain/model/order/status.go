package order

import (
	"errors"
	"fmt"

	"urbanmart/internal/pkg/errs"
)

// ErrInvalidStatusTransition is returned when a status change does not follow
// the order lifecycle graph. The graph is enforced before every write, so a
// delivered order can never move back to pending.
var ErrInvalidStatusTransition = errors.New("invalid order status transition")

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Processing ──> Shipped ──> Delivered ──> Refunded
//	   │            │    └───────────────────┘ ▲
//	   │            └───────────────────────────┘
//	   └──────┬─────────────┬──> Cancelled
//	       (from Pending, Confirmed, Processing)
//
// Cancelled and Refunded are terminal.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	UnknownStatus Status = iota

	// Pending is the initial status after checkout.
	Pending

	// Confirmed means the merchant (or a delivery assignment) accepted the order.
	Confirmed

	// Processing means the order is being prepared.
	Processing

	// Shipped means the order left the merchant; set by the delivery workflow
	// when the courier marks pickup.
	Shipped

	// Delivered means the customer received the order. Refund is the only
	// transition left.
	Delivered

	// Cancelled is a terminal exit reachable before shipping.
	Cancelled

	// Refunded is a terminal exit reachable after delivery.
	Refunded
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "UNKNOWN",
		Pending:       "PENDING",
		Confirmed:     "CONFIRMED",
		Processing:    "PROCESSING",
		Shipped:       "SHIPPED",
		Delivered:     "DELIVERED",
		Cancelled:     "CANCELLED",
		Refunded:      "REFUNDED",
	}
}

// allowedTransitions is the explicit adjacency graph of the order lifecycle.
func allowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:    {Confirmed, Processing, Cancelled},
		Confirmed:  {Processing, Shipped, Cancelled},
		Processing: {Shipped, Cancelled},
		Shipped:    {Delivered},
		Delivered:  {Refunded},
		Cancelled:  {},
		Refunded:   {},
	}
}

// ParseStatus converts the wire representation ("PENDING", "SHIPPED", ...)
// into a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != UnknownStatus && str == s {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks that the Status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := allowedTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// String returns the wire representation of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// CanTransitionTo reports whether the lifecycle graph allows moving to next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range allowedTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo returns next if the move is allowed, or ErrInvalidStatusTransition
// naming both states otherwise.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return UnknownStatus, err
	}
	if !s.CanTransitionTo(next) {
		return UnknownStatus, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, s, next)
	}
	return next, nil
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return len(allowedTransitions()[s]) == 0
}
