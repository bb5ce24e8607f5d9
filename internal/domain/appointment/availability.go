package appointment

import (
	"maps"

	"github.com/BruksfildServices01/barbershop-api/internal/models"
)

// BookedSlots returns the slot labels claimed by appointments for the named barber.
func BookedSlots(barber string, appointments []models.Document) map[string]struct{} {
	booked := make(map[string]struct{})
	for _, ap := range appointments {
		if Text(ap, FieldBarber) == barber {
			booked[Text(ap, FieldSlot)] = struct{}{}
		}
	}
	return booked
}

// AvailableSlots removes booked labels from the static slot list, keeping
// the static order.
func AvailableSlots(slots []string, booked map[string]struct{}) []string {
	available := make([]string, 0, len(slots))
	for _, slot := range slots {
		if _, taken := booked[slot]; taken {
			continue
		}
		available = append(available, slot)
	}
	return available
}

// ApplyAvailability returns shallow copies of barbers whose slots hold only
// the free labels for the day the appointments belong to. Every other field
// is passed through and the input is not modified.
func ApplyAvailability(
	barbers []models.Document,
	appointments []models.Document,
) []models.Document {
	out := make([]models.Document, 0, len(barbers))
	for _, b := range barbers {
		booked := BookedSlots(Text(b, FieldName), appointments)

		c := maps.Clone(b)
		if c == nil {
			c = models.Document{}
		}
		c[FieldSlots] = AvailableSlots(Strings(b, FieldSlots), booked)
		out = append(out, c)
	}
	return out
}
