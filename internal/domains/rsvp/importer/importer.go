// Package importer turns pasted spreadsheet rows ("Full Name<TAB>count") into candidate guest records.
//
// Parsing never fails: a malformed line degrades to a best-effort record, so the output always has
// one record per non-empty input line. Validation and persistence belong to the bulk create path.
package importer

import (
	"fmt"
	"guestlist/internal/domains/rsvp/model"
	"guestlist/internal/domains/rsvp/model/dto"
	"guestlist/shared/validator"
	"strconv"
	"strings"
)

const (
	columnSeparator    = "\t"
	missingLastName    = "."
	defaultPartySize   = 1
	minimumColumnCount = 2
)

// Options controls the optional parts of the conversion.
type Options struct {
	// PlaceholderEmail synthesizes first.last@import.placeholder for every row.
	PlaceholderEmail bool
}

// Result holds one record per non-empty line plus a warning for every clamped party size.
type Result struct {
	Records  []dto.CreateGuestResponseRequest
	Warnings []dto.ImportWarning
}

func Parse(text string, opts Options) Result {
	res := Result{
		Records:  []dto.CreateGuestResponseRequest{},
		Warnings: []dto.ImportWarning{},
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		record, requested := parseLine(line, opts)

		if requested != record.PartySize {
			res.Warnings = append(res.Warnings, dto.ImportWarning{
				Index:     len(res.Records),
				Name:      record.FirstName + " " + record.LastName,
				Requested: requested,
				Applied:   record.PartySize,
			})
		}

		res.Records = append(res.Records, record)
	}

	return res
}

// parseLine returns the record and the party size the line asked for before clamping.
func parseLine(line string, opts Options) (dto.CreateGuestResponseRequest, int) {
	columns := strings.Split(line, columnSeparator)

	fullName := strings.TrimSpace(columns[0])
	requested := defaultPartySize

	if len(columns) >= minimumColumnCount {
		if count, err := strconv.Atoi(strings.TrimSpace(columns[1])); err == nil {
			requested = count
		}
	}

	firstName, lastName := SplitName(fullName)

	record := dto.CreateGuestResponseRequest{
		FirstName:    firstName,
		LastName:     lastName,
		PartySize:    ClampPartySize(requested),
		Availability: string(model.AvailabilityPending),
	}

	if opts.PlaceholderEmail {
		record.Email = PlaceholderEmail(firstName, lastName)
	}

	return record, requested
}

// SplitName treats the last word as the last name. A single word gets "." as last name.
func SplitName(fullName string) (string, string) {
	words := strings.Fields(fullName)

	switch len(words) {
	case 0:
		return fullName, missingLastName
	case 1:
		return words[0], missingLastName
	default:
		return strings.Join(words[:len(words)-1], " "), words[len(words)-1]
	}
}

func ClampPartySize(count int) int {
	return min(max(count, model.MinPartySize), model.MaxPartySize)
}

// PlaceholderEmail builds first.last@import.placeholder. The "." last name is left out so the
// address stays syntactically valid.
func PlaceholderEmail(firstName, lastName string) string {
	local := compact(firstName)
	if last := compact(lastName); last != "" && last != missingLastName {
		local += "." + last
	}

	return fmt.Sprintf("%s@%s", local, validator.PlaceholderEmailDomain)
}

func compact(value string) string {
	return strings.ToLower(strings.Join(strings.Fields(value), ""))
}
