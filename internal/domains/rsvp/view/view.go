// Package view derives the filtered, sorted and aggregated projections of the guest list.
// Every function is pure and leaves its input untouched.
package view

import (
	"cmp"
	"guestlist/internal/domains/rsvp/model"
	"slices"
	"strings"
)

// AvailabilityAll disables the availability filter.
const AvailabilityAll = "all"

type SortKey string

const (
	SortNone         SortKey = ""
	SortFirstName    SortKey = "firstName"
	SortLastName     SortKey = "lastName"
	SortEmail        SortKey = "email"
	SortPartySize    SortKey = "partySize"
	SortAvailability SortKey = "availability"
	SortTableNumber  SortKey = "tableNumber"
	SortCreatedAt    SortKey = "createdAt"
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Config is the immutable view configuration of the admin list.
type Config struct {
	Search       string
	Availability string
	SortKey      SortKey
	Direction    Direction
}

type comparator struct {
	isNull  func(model.GuestResponse) bool
	compare func(a, b model.GuestResponse) int
}

func never(model.GuestResponse) bool { return false }

var comparators = map[SortKey]comparator{
	SortFirstName: {
		isNull:  never,
		compare: func(a, b model.GuestResponse) int { return compareFold(a.FirstName, b.FirstName) },
	},
	SortLastName: {
		isNull:  never,
		compare: func(a, b model.GuestResponse) int { return compareFold(a.LastName, b.LastName) },
	},
	// only nil counts as missing; blank emails are saved as NULL so "" never comes from the store
	SortEmail: {
		isNull:  func(g model.GuestResponse) bool { return g.Email == nil },
		compare: func(a, b model.GuestResponse) int { return compareFold(*a.Email, *b.Email) },
	},
	SortPartySize: {
		isNull:  never,
		compare: func(a, b model.GuestResponse) int { return cmp.Compare(a.PartySize, b.PartySize) },
	},
	SortAvailability: {
		isNull:  never,
		compare: func(a, b model.GuestResponse) int { return cmp.Compare(a.Availability, b.Availability) },
	},
	SortTableNumber: {
		isNull:  func(g model.GuestResponse) bool { return g.TableNumber == nil },
		compare: func(a, b model.GuestResponse) int { return cmp.Compare(*a.TableNumber, *b.TableNumber) },
	},
	SortCreatedAt: {
		isNull:  func(g model.GuestResponse) bool { return g.CreatedAt.IsZero() },
		compare: func(a, b model.GuestResponse) int { return a.CreatedAt.Compare(b.CreatedAt) },
	},
}

// ParseSortKey reports whether s names a sortable column.
func ParseSortKey(s string) (SortKey, bool) {
	key := SortKey(s)
	_, ok := comparators[key]

	return key, ok
}

// DefaultDirection is ascending except for the creation timestamp, where the newest come first.
func DefaultDirection(key SortKey) Direction {
	if key == SortCreatedAt {
		return Desc
	}

	return Asc
}

// Toggle applies a click on a column header: the same key flips direction, a new key starts at its default.
func Toggle(cfg Config, key SortKey) Config {
	if cfg.SortKey == key && key != SortNone {
		if cfg.Direction == Asc {
			cfg.Direction = Desc
		} else {
			cfg.Direction = Asc
		}

		return cfg
	}

	cfg.SortKey = key
	cfg.Direction = DefaultDirection(key)

	return cfg
}

// Matches reports whether a guest passes both the search and the availability filter.
func (c Config) Matches(guest model.GuestResponse) bool {
	return c.matchesSearch(guest) && c.matchesAvailability(guest)
}

func (c Config) matchesSearch(guest model.GuestResponse) bool {
	query := strings.ToLower(c.Search)
	if query == "" {
		return true
	}

	if strings.Contains(strings.ToLower(guest.FullName()), query) {
		return true
	}

	return guest.Email != nil && strings.Contains(strings.ToLower(*guest.Email), query)
}

func (c Config) matchesAvailability(guest model.GuestResponse) bool {
	if c.Availability == "" || c.Availability == AvailabilityAll {
		return true
	}

	return string(guest.Availability) == c.Availability
}

func Filter(guests []model.GuestResponse, cfg Config) []model.GuestResponse {
	res := make([]model.GuestResponse, 0, len(guests))

	for _, guest := range guests {
		if cfg.Matches(guest) {
			res = append(res, guest)
		}
	}

	return res
}

// Sort returns a stably sorted copy. Null values go last whatever the direction.
// An unknown key keeps the input order.
func Sort(guests []model.GuestResponse, key SortKey, dir Direction) []model.GuestResponse {
	res := slices.Clone(guests)

	cmpr, ok := comparators[key]
	if !ok {
		return res
	}

	slices.SortStableFunc(res, func(a, b model.GuestResponse) int {
		aNull, bNull := cmpr.isNull(a), cmpr.isNull(b)

		switch {
		case aNull && bNull:
			return 0
		case aNull:
			return 1
		case bNull:
			return -1
		}

		if dir == Desc {
			return cmpr.compare(b, a)
		}

		return cmpr.compare(a, b)
	})

	return res
}

// Apply filters then sorts according to cfg.
func Apply(guests []model.GuestResponse, cfg Config) []model.GuestResponse {
	filtered := Filter(guests, cfg)

	dir := cfg.Direction
	if dir == "" {
		dir = DefaultDirection(cfg.SortKey)
	}

	return Sort(filtered, cfg.SortKey, dir)
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
