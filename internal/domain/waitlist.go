package domain

import "time"

// WaitlistEntry is the capacity-free fallback record created when no slot
// is available for a live request. It holds no slot reference.
type WaitlistEntry struct {
	ID          int64
	GuestID     int64
	Date        time.Time // organization-local calendar day, midnight
	ServiceType ServiceType
	CreatedAt   time.Time
}
