package appointment

import "time"

type AvailabilityInput struct {
	WorkshopSlug string
	Date         time.Time
}

// AvailableSlots echoes the requested date with the remaining slot
// strings in catalog order.
type AvailableSlots struct {
	Date      string   `json:"date"`
	TimeSlots []string `json:"timeSlots"`
}
