package delivery

import (
	"errors"
	"fmt"

	"urbanmart/internal/pkg/errs"
)

// ErrInvalidAssignmentTransition is returned when an assignment status change
// does not follow the delivery workflow graph.
var ErrInvalidAssignmentTransition = errors.New("invalid delivery assignment transition")

// Status represents the lifecycle state of a delivery assignment. It runs in
// parallel with the parent order's status and drives it forward:
//
//	Requested ──> Assigned ──> InTransit ──> Completed
//	    │             │
//	    └──> Cancelled <┘
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	UnknownStatus Status = iota

	// Requested means a merchant asked a delivery organization to deliver;
	// no delivery person has claimed the order yet.
	Requested

	// Assigned means an organization or the merchant picked a delivery person.
	Assigned

	// InTransit means the delivery person marked pickup.
	InTransit

	// Completed means the delivery person marked delivery. Terminal.
	Completed

	// Cancelled is a terminal exit reachable before pickup.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "UNKNOWN",
		Requested:     "REQUESTED",
		Assigned:      "ASSIGNED",
		InTransit:     "IN_TRANSIT",
		Completed:     "COMPLETED",
		Cancelled:     "CANCELLED",
	}
}

func allowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Requested: {Assigned, Cancelled},
		Assigned:  {InTransit, Cancelled},
		InTransit: {Completed},
		Completed: {},
		Cancelled: {},
	}
}

// ParseStatus converts the wire representation into a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != UnknownStatus && str == s {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid assignment status", s))
}

// Validate checks that the Status is one of the defined workflow states.
func (s Status) Validate() error {
	if _, ok := allowedTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid assignment status", s))
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

// CanTransitionTo reports whether the workflow graph allows moving to next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range allowedTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo returns next if the move is allowed, or
// ErrInvalidAssignmentTransition naming both states otherwise.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return UnknownStatus, err
	}
	if !s.CanTransitionTo(next) {
		return UnknownStatus, fmt.Errorf("%w: %s -> %s", ErrInvalidAssignmentTransition, s, next)
	}
	return next, nil
}
