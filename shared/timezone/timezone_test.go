package timezone_test

import (
	"guestlist/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation(t *testing.T) {
	loc := timezone.Location()

	require.NotNil(t, loc)
	assert.Same(t, loc, timezone.Location())
}

func TestNow(t *testing.T) {
	before := time.Now()
	now := timezone.Now()

	assert.Equal(t, timezone.Location(), now.Location())
	assert.False(t, now.Before(before.Add(-time.Second)))
}

func TestFormat(t *testing.T) {
	instant := time.Date(2024, 6, 1, 18, 30, 0, 0, time.UTC)

	got := timezone.Format(instant, time.RFC3339)

	parsed, err := time.Parse(time.RFC3339, got)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(instant))
}
