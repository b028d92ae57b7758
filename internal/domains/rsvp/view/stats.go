package view

import "guestlist/internal/domains/rsvp/model"

type Stats struct {
	Total          int `json:"total"`
	March19        int `json:"march19"`
	March21        int `json:"march21"`
	Both           int `json:"both"`
	Unavailable    int `json:"unavailable"`
	Pending        int `json:"pending"`
	Assigned       int `json:"assigned"`
	TotalAttendees int `json:"totalAttendees"`
}

// ComputeStats reduces the whole, unfiltered list.
func ComputeStats(guests []model.GuestResponse) Stats {
	stats := Stats{Total: len(guests)}

	for _, guest := range guests {
		switch guest.Availability {
		case model.AvailabilityMarch19:
			stats.March19++
		case model.AvailabilityMarch21:
			stats.March21++
		case model.AvailabilityBoth:
			stats.Both++
		case model.AvailabilityUnavailable:
			stats.Unavailable++
		case model.AvailabilityPending:
			stats.Pending++
		}

		if guest.TableNumber != nil {
			stats.Assigned++
		}

		stats.TotalAttendees += guest.PartySize
	}

	return stats
}
