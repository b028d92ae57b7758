package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guestlist/internal/domains/invitation/model"
	"guestlist/internal/domains/invitation/model/dto"
)

func TestCompose(t *testing.T) {
	html, plain, err := compose(dto.EmailData{
		FirstName: "Jean",
		LastName:  "Dupont",
		Message:   "<b>Bring</b> your dancing shoes",
		Event:     model.Event{Name: "Garden Party", Hosts: "Claire", Dates: "19 March", Venue: "Paris", URL: "https://example.com/rsvp"},
	})
	require.NoError(t, err)

	assert.Contains(t, html, "Dear Jean Dupont,")
	assert.Contains(t, html, "&lt;b&gt;Bring&lt;/b&gt;")
	assert.Contains(t, html, `href="https://example.com/rsvp"`)
	assert.NotContains(t, html, "<b>Bring</b>")

	assert.Contains(t, plain, "Invitation: Garden Party")
	assert.Contains(t, plain, "<b>Bring</b> your dancing shoes")
	assert.Contains(t, plain, "When: 19 March")
	assert.Contains(t, plain, "Respond at https://example.com/rsvp")
}

func TestCompose_OptionalPartsOmitted(t *testing.T) {
	html, plain, err := compose(dto.EmailData{FirstName: "Alice", LastName: "Martin"})
	require.NoError(t, err)

	assert.NotContains(t, html, "Respond now")
	assert.NotContains(t, plain, "When:")
	assert.NotContains(t, plain, "Respond at")
}

func TestSubject(t *testing.T) {
	assert.Equal(t, "Jean, you're invited to Garden Party", subject("Jean", "Garden Party"))
	assert.Equal(t, "Jean, you're invited", subject("Jean", ""))
}
