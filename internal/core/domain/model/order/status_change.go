package order

import (
	"time"

	"urbanmart/internal/core/domain/model/kernel"
)

// StatusChange is one append-only history entry. Exactly one entry is
// recorded per status transition (plus the initial Pending entry at
// creation); entries are never edited or deleted.
type StatusChange struct {
	id        kernel.UUID
	status    Status
	notes     string
	changedBy kernel.UUID
	changedAt time.Time
}

// RestoreStatusChange reconstructs a history entry from persistence.
func RestoreStatusChange(
	id kernel.UUID,
	status Status,
	notes string,
	changedBy kernel.UUID,
	changedAt time.Time,
) (StatusChange, error) {
	if err := id.Validate(); err != nil {
		return StatusChange{}, err
	}
	if err := status.Validate(); err != nil {
		return StatusChange{}, err
	}
	if err := changedBy.Validate(); err != nil {
		return StatusChange{}, err
	}

	return StatusChange{
		id:        id,
		status:    status,
		notes:     notes,
		changedBy: changedBy,
		changedAt: changedAt,
	}, nil
}

func newStatusChange(status Status, notes string, changedBy kernel.UUID, changedAt time.Time) StatusChange {
	return StatusChange{
		id:        kernel.NewUUID(),
		status:    status,
		notes:     notes,
		changedBy: changedBy,
		changedAt: changedAt,
	}
}

// ID returns the entry's unique identifier.
func (sc StatusChange) ID() kernel.UUID { return sc.id }

// Status returns the status recorded by this entry.
func (sc StatusChange) Status() Status { return sc.status }

// Notes returns the free-form notes attached to the change.
func (sc StatusChange) Notes() string { return sc.notes }

// ChangedBy returns the actor that performed the change.
func (sc StatusChange) ChangedBy() kernel.UUID { return sc.changedBy }

// ChangedAt returns when the change happened.
func (sc StatusChange) ChangedAt() time.Time { return sc.changedAt }
