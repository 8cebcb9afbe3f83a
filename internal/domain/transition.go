package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTransition is returned for a status transition the lifecycle
// does not allow. The booking is left unchanged.
var ErrInvalidTransition = errors.New("domain: invalid booking status transition")

// allowedTransitions is the booking lifecycle:
//
//	waiting → booked → done
//	booked  → cancelled
//	booked  → no_show
//	cancelled → booked (rebook)
//	no_show   → booked (rebook)
//
// done, cancelled and no_show release slot capacity the instant they are
// entered; cancelled and no_show can re-enter booked only through the
// rebook flow, which re-runs slot selection.
var allowedTransitions = map[BookingStatus][]BookingStatus{
	StatusWaiting:   {StatusBooked},
	StatusBooked:    {StatusDone, StatusCancelled, StatusNoShow},
	StatusCancelled: {StatusBooked},
	StatusNoShow:    {StatusBooked},
	StatusDone:      {},
}

// CanTransition reports whether the lifecycle allows moving from one
// status to another.
func CanTransition(from, to BookingStatus) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// RequiresReallocation reports whether a transition must go through the
// allocator rather than a raw status update: re-entering booked from a
// lapsed status is a booking request, not a status flip.
func RequiresReallocation(from, to BookingStatus) bool {
	return to == StatusBooked && (from == StatusCancelled || from == StatusNoShow)
}

// Transition applies a status change to the booking, stamping the actor and
// time. Returns ErrInvalidTransition and leaves the booking unchanged if
// the lifecycle does not allow the change.
func (b *Booking) Transition(to BookingStatus, actorID int64, at time.Time) error {
	if !CanTransition(b.Status, to) {
		return fmt.Errorf("%w: %s → %s", ErrInvalidTransition, b.Status, to)
	}

	b.Status = to
	b.UpdatedBy = actorID
	b.UpdatedAt = at
	return nil
}

// IsValidStatus reports whether the value is a known booking status.
func IsValidStatus(status BookingStatus) bool {
	for _, s := range ValidStatuses {
		if s == status {
			return true
		}
	}
	return false
}
