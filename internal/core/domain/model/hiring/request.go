// Package hiring provides the HiringRequest aggregate governing delivery
// person membership in delivery organizations. Requests come in two kinds —
// an org owner's invitation or a delivery person's application — and move
// Pending -> Accepted | Rejected exactly once.
package hiring

import (
	"errors"
	"fmt"
	"time"

	"urbanmart/internal/core/domain/model/kernel"
	"urbanmart/internal/pkg/errs"
)

var (
	// ErrRequestIsNotConstructed is returned when a Request was not created
	// through NewRequest or RestoreRequest.
	ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest or RestoreRequest constructor")

	// ErrRequestAlreadyResolved is returned when accepting or rejecting a
	// request that is no longer pending.
	ErrRequestAlreadyResolved = errors.New("hiring request is already resolved")
)

// Kind distinguishes who initiated the request.
type Kind int

const (
	// UnknownKind represents an invalid or undefined kind.
	UnknownKind Kind = iota

	// Invitation is sent by an org owner to a delivery person.
	Invitation

	// Application is sent by a delivery person to an org.
	Application
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		Invitation:  "INVITATION",
		Application: "APPLICATION",
	}
}

// ParseKind converts the wire representation into a Kind.
func ParseKind(s string) (Kind, error) {
	for kind, str := range getKindStrings() {
		if str == s {
			return kind, nil
		}
	}
	return UnknownKind, errs.NewValueIsInvalidErrorWithCause("kind",
		fmt.Errorf("%q is not a valid hiring request kind", s))
}

// Validate checks that the Kind is one of the defined values.
func (k Kind) Validate() error {
	if _, ok := getKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("kind",
			fmt.Errorf("%d is not a valid hiring request kind", k))
	}
	return nil
}

// String returns the wire representation of the kind.
func (k Kind) String() string {
	if s, ok := getKindStrings()[k]; ok {
		return s
	}
	return "UNKNOWN"
}

// Status is the resolution state of a hiring request.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	UnknownStatus Status = iota

	// StatusPending awaits the counterpart's decision.
	StatusPending

	// StatusAccepted records a granted membership. Terminal.
	StatusAccepted

	// StatusRejected records a declined request. Terminal.
	StatusRejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusPending:  "PENDING",
		StatusAccepted: "ACCEPTED",
		StatusRejected: "REJECTED",
	}
}

// ParseStatus converts the wire representation into a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid hiring request status", s))
}

// Validate checks that the Status is one of the defined values.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid hiring request status", s))
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

// Request is a pending membership decision between a delivery person and an
// organization. Accepting an Invitation is the invited user's call; accepting
// an Application is the org owner's call — the command layer enforces the
// counterpart, the aggregate enforces single resolution.
type Request struct {
	id             kernel.UUID
	orgID          kernel.UUID
	deliveryUserID kernel.UUID
	kind           Kind
	status         Status
	createdAt      time.Time

	isConstructed bool
}

// NewRequest creates a pending hiring request.
func NewRequest(id, orgID, deliveryUserID kernel.UUID, kind Kind, now time.Time) (*Request, error) {
	r := &Request{
		status:        StatusPending,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setOrgID(orgID),
		r.setDeliveryUserID(deliveryUserID),
		r.setKind(kind),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRequest reconstructs a request from persistence.
func RestoreRequest(
	id, orgID, deliveryUserID kernel.UUID,
	kind Kind,
	status Status,
	createdAt time.Time,
) (*Request, error) {
	r, err := NewRequest(id, orgID, deliveryUserID, kind, createdAt)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	r.status = status
	return r, nil
}

// Validate ensures the Request was created via a constructor.
func (r *Request) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRequestIsNotConstructed
	}
	return nil
}

// ID returns the request's unique identifier.
func (r *Request) ID() kernel.UUID { return r.id }

// OrgID returns the organization involved.
func (r *Request) OrgID() kernel.UUID { return r.orgID }

// DeliveryUserID returns the delivery person involved.
func (r *Request) DeliveryUserID() kernel.UUID { return r.deliveryUserID }

// Kind returns whether the request is an invitation or an application.
func (r *Request) Kind() Kind { return r.kind }

// Status returns the resolution state.
func (r *Request) Status() Status { return r.status }

// CreatedAt returns when the request was submitted.
func (r *Request) CreatedAt() time.Time { return r.createdAt }

// IsPending reports whether the request still awaits a decision.
func (r *Request) IsPending() bool { return r.status == StatusPending }

// Accept resolves the request positively. Only pending requests can be accepted.
func (r *Request) Accept() error {
	if r.status != StatusPending {
		return fmt.Errorf("%w: %s", ErrRequestAlreadyResolved, r.status)
	}
	r.status = StatusAccepted
	return nil
}

// Reject resolves the request negatively. Only pending requests can be rejected.
func (r *Request) Reject() error {
	if r.status != StatusPending {
		return fmt.Errorf("%w: %s", ErrRequestAlreadyResolved, r.status)
	}
	r.status = StatusRejected
	return nil
}

func (r *Request) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Request) setOrgID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("orgID: %w", err)
	}
	r.orgID = id
	return nil
}

func (r *Request) setDeliveryUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("deliveryUserID: %w", err)
	}
	r.deliveryUserID = id
	return nil
}

func (r *Request) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	r.kind = kind
	return nil
}
