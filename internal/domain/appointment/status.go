package appointment

import "github.com/autoservicehub/workshop-scheduler/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusCreated   Status = "CREATED"
	StatusPending   Status = "PENDING_CONFIRMATION"
	StatusConfirmed Status = "CONFIRMED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

// InitialStatus is the status every new booking starts in. CREATED is kept
// in the enum for rows written before the confirmation flow existed and is
// treated like a pending booking.
func InitialStatus() Status {
	return StatusPending
}

// Booked reports whether a status still occupies its time slot.
func (s Status) Booked() bool {
	return s != StatusCancelled
}

// ===============================
// Transition rules
// ===============================

func CanConfirm(current Status) error {
	if current != StatusPending && current != StatusCreated {
		return httperr.ErrBusiness("appointment.invalid_state")
	}
	return nil
}

func CanCancel(current Status) error {
	switch current {
	case StatusPending, StatusCreated, StatusConfirmed:
		return nil
	}
	return httperr.ErrBusiness("appointment.invalid_state")
}

func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("appointment.invalid_state")
	}
	return nil
}
