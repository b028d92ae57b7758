// Package timezone keeps timestamps shown to hosts in the configured APP_TIMEZONE.
package timezone

import (
	"guestlist/config"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	once     sync.Once
	location = time.UTC
)

// Location returns the configured location, loading it on first use. Unknown names fall back to UTC.
func Location() *time.Location {
	once.Do(func() {
		name := config.Get().App.Timezone
		if name == "" {
			return
		}

		loc, err := time.LoadLocation(name)
		if err != nil {
			log.Warn().Err(err).Str("timezone", name).Msg("unknown timezone, keeping UTC")

			return
		}

		location = loc
	})

	return location
}

func Now() time.Time {
	return time.Now().In(Location())
}

// Format renders t in the configured location.
func Format(t time.Time, layout string) string {
	return t.In(Location()).Format(layout)
}
