package schedule

import (
	"fmt"
	"time"
)

// TimeSlot is a candidate appointment start time within a barber's
// operating window. Slots are computed per request, never persisted.
type TimeSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// GenerateTimeSlots tiles the window [openTime, closeTime) with fixed-length
// slots of durationMin minutes and marks each one unavailable when its start
// time equals a reserved marker (exact HH:MM match, bookings never vary
// duration in this model).
//
// The function is total: openTime >= closeTime or durationMin <= 0 yield an
// empty sequence. Callers are expected to reject those as configuration
// errors before rendering the result. Output is chronological and
// deterministic for identical inputs.
func GenerateTimeSlots(openTime, closeTime string, durationMin int, reserved []string) []TimeSlot {
	openMin, err := parseHM(openTime)
	if err != nil {
		return []TimeSlot{}
	}
	closeMin, err := parseHM(closeTime)
	if err != nil {
		return []TimeSlot{}
	}
	if durationMin <= 0 || openMin >= closeMin {
		return []TimeSlot{}
	}

	taken := make(map[string]struct{}, len(reserved))
	for _, r := range reserved {
		taken[r] = struct{}{}
	}

	slots := []TimeSlot{}
	for cur := openMin; cur+durationMin <= closeMin; cur += durationMin {
		start := formatHM(cur)
		_, conflict := taken[start]
		slots = append(slots, TimeSlot{
			Time:      start,
			Available: !conflict,
		})
	}

	return slots
}

// OnlyAvailable filters a generated sequence down to the free slots,
// preserving order.
func OnlyAvailable(slots []TimeSlot) []TimeSlot {
	out := make([]TimeSlot, 0, len(slots))
	for _, s := range slots {
		if s.Available {
			out = append(out, s)
		}
	}
	return out
}

// parseHM converts an HH:MM wall-clock string to minutes since midnight.
func parseHM(hm string) (int, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

func formatHM(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
