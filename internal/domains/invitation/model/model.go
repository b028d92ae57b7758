package model

import "guestlist/config"

const (
	EntityName = "invitation"

	// ArchiveDirectory is the object prefix of archived invitation documents.
	ArchiveDirectory = "invitations"
)

// Event holds the details printed on invitations and written in invitation emails.
type Event struct {
	Name  string
	Hosts string
	Venue string
	Dates string
	URL   string
}

func EventFromConfig(cfg *config.Config) Event {
	return Event{
		Name:  cfg.Event.Name,
		Hosts: cfg.Event.Hosts,
		Venue: cfg.Event.Venue,
		Dates: cfg.Event.Dates,
		URL:   cfg.Event.URL,
	}
}
