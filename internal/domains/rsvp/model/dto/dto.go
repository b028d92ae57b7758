package dto

import (
	"guestlist/internal/domains/rsvp/model"
	"guestlist/internal/domains/rsvp/view"
	"guestlist/shared/constant"
	gDto "guestlist/shared/dto"
	"guestlist/shared/failure"
	"net/http"
	"strings"
)

type CreateGuestResponseRequest struct {
	FirstName    string `json:"firstName"    validate:"required,notblank,max=100"`
	LastName     string `json:"lastName"     validate:"required,notblank,max=100"`
	Email        string `json:"email"        validate:"omitempty,email,max=255"`
	PartySize    int    `json:"partySize"    validate:"required,min=1,max=2"`
	Availability string `json:"availability" validate:"required,oneof=19-march 21-march both unavailable pending"`
	TableNumber  *int   `json:"tableNumber"  validate:"omitempty,gt=0"`
	Notes        string `json:"notes"        validate:"omitempty,max=2000"`
}

// Normalize trims every string so padded input validates the same way it is stored.
func (c CreateGuestResponseRequest) Normalize() CreateGuestResponseRequest {
	c.FirstName = strings.TrimSpace(c.FirstName)
	c.LastName = strings.TrimSpace(c.LastName)
	c.Email = strings.TrimSpace(c.Email)
	c.Notes = strings.TrimSpace(c.Notes)

	return c
}

func (c *CreateGuestResponseRequest) ToModel() model.GuestResponse {
	return model.GuestResponse{
		FirstName:    strings.TrimSpace(c.FirstName),
		LastName:     strings.TrimSpace(c.LastName),
		Email:        nullableString(c.Email),
		PartySize:    c.PartySize,
		Availability: model.Availability(c.Availability),
		TableNumber:  c.TableNumber,
		Notes:        nullableString(c.Notes),
	}
}

// UpdateGuestResponseRequest is the full editable field set. Omitted optional fields are cleared.
type UpdateGuestResponseRequest struct {
	FirstName    string  `db:"first_name"   json:"firstName"    validate:"required,notblank,max=100"`
	LastName     string  `db:"last_name"    json:"lastName"     validate:"required,notblank,max=100"`
	Email        *string `db:"email"        json:"email"        validate:"omitempty,email,max=255"`
	PartySize    int     `db:"party_size"   json:"partySize"    validate:"required,min=1,max=2"`
	Availability string  `db:"availability" json:"availability" validate:"required,oneof=19-march 21-march both unavailable pending"`
	TableNumber  *int    `db:"table_number" json:"tableNumber"  validate:"omitempty,gt=0"`
	Notes        *string `db:"notes"        json:"notes"        validate:"omitempty,max=2000"`
}

// Normalize trims names and turns blank optional strings into nil. It runs before validation,
// so a cleared email field reaches the validator as nil rather than "".
func (u UpdateGuestResponseRequest) Normalize() UpdateGuestResponseRequest {
	u.FirstName = strings.TrimSpace(u.FirstName)
	u.LastName = strings.TrimSpace(u.LastName)

	if u.Email != nil {
		u.Email = nullableString(*u.Email)
	}

	if u.Notes != nil {
		u.Notes = nullableString(*u.Notes)
	}

	return u
}

type UpdateTableRequest struct {
	TableNumber *int `db:"table_number" json:"tableNumber" validate:"omitempty,gt=0"`
}

type GuestResponse struct {
	ID           int64   `json:"id"`
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
	Email        *string `json:"email"`
	PartySize    int     `json:"partySize"`
	Availability string  `json:"availability"`
	TableNumber  *int    `json:"tableNumber"`
	Notes        *string `json:"notes"`
	gDto.Metadata
}

func (r *GuestResponse) FromModel(model model.GuestResponse) {
	r.ID = model.ID
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.Email = model.Email
	r.PartySize = model.PartySize
	r.Availability = string(model.Availability)
	r.TableNumber = model.TableNumber
	r.Notes = model.Notes
	r.Metadata.FromModel(model.Metadata)
}

func FromModels(models []model.GuestResponse) []GuestResponse {
	res := make([]GuestResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

type BulkError struct {
	Index  int      `json:"index"`
	Reason string   `json:"reason"`
	Fields []string `json:"fields,omitempty"`
}

// BulkCreateResponse summarises a best-effort batch: one bad row never blocks the others.
type BulkCreateResponse struct {
	Success int         `json:"success"`
	Failed  int         `json:"failed"`
	Errors  []BulkError `json:"errors"`
}

type ImportRequest struct {
	Text string `json:"text" validate:"required"`
}

type ImportWarning struct {
	Index     int    `json:"index"`
	Name      string `json:"name"`
	Requested int    `json:"requested"`
	Applied   int    `json:"applied"`
}

type ImportResponse struct {
	BulkCreateResponse
	Parsed   int             `json:"parsed"`
	Warnings []ImportWarning `json:"warnings"`
}

func nullableString(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	return &value
}

// ListQuery is the admin list view configuration read from the query string.
type ListQuery struct {
	Search       string
	Availability string
	gDto.QueryParams
}

func (q *ListQuery) FromRequest(r *http.Request) {
	params := r.URL.Query()

	q.Search = strings.TrimSpace(params.Get(constant.RequestParamSearch))
	q.Availability = params.Get(constant.RequestParamAvailability)
	q.QueryParams.FromRequest(r)
}

// ToConfig checks the availability filter, sort direction and sort key and builds the view configuration.
func (q *ListQuery) ToConfig() (view.Config, error) {
	cfg := view.Config{
		Search:       q.Search,
		Availability: q.Availability,
		Direction:    view.Direction(strings.ToLower(q.SortDir)),
	}

	if cfg.Availability != "" && cfg.Availability != view.AvailabilityAll && !model.Availability(cfg.Availability).Valid() {
		return cfg, failure.Validation("availability must be all or one of 19-march 21-march both unavailable pending", constant.RequestParamAvailability) //nolint:wrapcheck
	}

	if !q.ValidDirection() {
		return cfg, failure.Validation("sort_dir must be one of asc desc", constant.RequestParamSortDir) //nolint:wrapcheck
	}

	if q.SortBy != "" {
		key, ok := view.ParseSortKey(q.SortBy)
		if !ok {
			return cfg, failure.Validation("sort_by must be one of firstName lastName email partySize availability tableNumber createdAt", constant.RequestParamSortBy) //nolint:wrapcheck
		}

		cfg.SortKey = key
	}

	return cfg, nil
}
