package domain

import (
	"time"

	"github.com/m04kA/SMC-DayCenterService/pkg/types"
)

// BlockedSlot is an operator-imposed block on one catalog slot for one day.
// A block prevents new bookings only; bookings already in the slot stay
// valid and keep their capacity.
type BlockedSlot struct {
	ID          int64
	Date        time.Time // organization-local calendar day, midnight
	ServiceType ServiceType
	StartTime   types.TimeString
	Reason      string
	CreatedBy   int64
	CreatedAt   time.Time
}
