package document

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guestlist/internal/domains/invitation/model"
	rsvpModel "guestlist/internal/domains/rsvp/model"
)

func TestRender(t *testing.T) {
	table := 4
	guest := rsvpModel.GuestResponse{ID: 1, FirstName: "Hélène", LastName: "Dupont", PartySize: 2, TableNumber: &table}
	event := model.Event{Name: "Garden Party", Hosts: "Claire & Marc", Venue: "Château de Vaux", Dates: "19 & 21 March", URL: "https://example.com"}

	data, err := NewRenderer().Render(guest, event)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestRender_MinimalEvent(t *testing.T) {
	data, err := NewRenderer().Render(rsvpModel.GuestResponse{FirstName: "Alice", LastName: ".", PartySize: 1}, model.Event{})
	require.NoError(t, err)

	assert.NotEmpty(t, data)
}

func TestPartyLine(t *testing.T) {
	assert.Equal(t, "This invitation is valid for one guest.", partyLine(1))
	assert.Equal(t, "This invitation is valid for 2 guests.", partyLine(2))
}

func TestDetailLines(t *testing.T) {
	table := 7

	lines := detailLines(rsvpModel.GuestResponse{TableNumber: &table}, model.Event{Dates: "19 March", Venue: "Paris"})
	assert.Equal(t, []string{"19 March", "Paris", "Table 7"}, lines)

	assert.Empty(t, detailLines(rsvpModel.GuestResponse{}, model.Event{}))
}
