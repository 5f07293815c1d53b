package appointment

import "time"

// Fixed daily slot catalog, identical for every workshop. Injected as
// read-only configuration rather than stored per tenant.
var slotCatalog = []string{
	"08:00", "09:00", "10:00", "11:00",
	"14:00", "15:00", "16:00", "17:00",
}

const slotLayout = "15:04"

// Slots returns a copy of the catalog in booking order.
func Slots() []string {
	out := make([]string, len(slotCatalog))
	copy(out, slotCatalog)
	return out
}

func IsSlot(hm string) bool {
	for _, s := range slotCatalog {
		if s == hm {
			return true
		}
	}
	return false
}

// SlotOf extracts the HH:mm slot key from an appointment date-time.
func SlotOf(t time.Time) string {
	return t.Format(slotLayout)
}
