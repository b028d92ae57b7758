package model

import (
	"guestlist/shared/model"
)

const (
	TableName  = "rsvp_responses"
	EntityName = "rsvp"

	FieldID           = "id"
	FieldFirstName    = "first_name"
	FieldLastName     = "last_name"
	FieldEmail        = "email"
	FieldPartySize    = "party_size"
	FieldAvailability = "availability"
	FieldTableNumber  = "table_number"
	FieldNotes        = "notes"
	FieldCreatedAt    = "created_at"
)

const (
	MinPartySize = 1
	MaxPartySize = 2
)

// Availability is the attendance answer across the two event dates.
type Availability string

const (
	AvailabilityMarch19     Availability = "19-march"
	AvailabilityMarch21     Availability = "21-march"
	AvailabilityBoth        Availability = "both"
	AvailabilityUnavailable Availability = "unavailable"
	AvailabilityPending     Availability = "pending"
)

// Availabilities lists every valid value in display order.
var Availabilities = []Availability{
	AvailabilityMarch19,
	AvailabilityMarch21,
	AvailabilityBoth,
	AvailabilityUnavailable,
	AvailabilityPending,
}

func (a Availability) Valid() bool {
	for _, v := range Availabilities {
		if a == v {
			return true
		}
	}

	return false
}

type GuestResponse struct {
	ID           int64        `db:"id"           insert:"false" json:"id"`
	FirstName    string       `db:"first_name"                  json:"firstName"`
	LastName     string       `db:"last_name"                   json:"lastName"`
	Email        *string      `db:"email"                       json:"email"`
	PartySize    int          `db:"party_size"                  json:"partySize"`
	Availability Availability `db:"availability"                json:"availability"`
	TableNumber  *int         `db:"table_number"                json:"tableNumber"`
	Notes        *string      `db:"notes"                       json:"notes"`
	model.Metadata
}

// FullName is "first last" as shown in lists and searched by the view.
func (g GuestResponse) FullName() string {
	return g.FirstName + " " + g.LastName
}
