package service

import "doctorsportal/internal/model"

// ComputeAvailability returns copies of services whose slots exclude every
// slot already booked for that service on date. Slot order is preserved and
// the inputs are not modified.
func ComputeAvailability(date string, services []model.Service, bookings []model.Booking) []model.Service {
	booked := make(map[string]map[string]struct{})
	for _, b := range bookings {
		if b.Date != date {
			continue
		}
		slots, ok := booked[b.Treatment]
		if !ok {
			slots = make(map[string]struct{})
			booked[b.Treatment] = slots
		}
		slots[b.Slot] = struct{}{}
	}

	out := make([]model.Service, 0, len(services))
	for _, svc := range services {
		taken := booked[svc.Name]
		free := make([]string, 0, len(svc.Slots))
		for _, slot := range svc.Slots {
			if _, ok := taken[slot]; !ok {
				free = append(free, slot)
			}
		}
		svc.Slots = free
		out = append(out, svc)
	}
	return out
}
