package permissions_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guestlist/permissions"
)

func TestGet(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	tests := []struct {
		name     string
		path     string
		method   string
		wantSkip bool
	}{
		{name: "public rsvp submission", path: "/api/rsvp", method: http.MethodPost, wantSkip: true},
		{name: "trailing slash", path: "/api/rsvp/", method: http.MethodPost, wantSkip: true},
		{name: "lowercase method", path: "/api/login", method: "post", wantSkip: true},
		{name: "guest list is private", path: "/api/rsvp", method: http.MethodGet},
		{name: "delete is private", path: "/api/rsvp/{id}", method: http.MethodDelete},
		{name: "unknown route", path: "/api/unknown", method: http.MethodGet},
		{name: "empty pattern", path: "", method: http.MethodGet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantSkip, data.FindPermissions(tt.path, tt.method).Skip)
		})
	}
}
