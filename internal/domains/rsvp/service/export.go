package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"guestlist/internal/domains/rsvp/model"
	"guestlist/shared/constant"
	gDto "guestlist/shared/dto"
	"guestlist/shared/timezone"
	"strconv"

	"github.com/rs/zerolog/log"
)

var csvHeader = []string{"ID", "First name", "Last name", "Email", "Party size", "Availability", "Table", "Notes", "Created at"}

// ExportCSV renders every guest response ordered by id, straight from the database.
func (s *serviceImpl) ExportCSV(ctx context.Context) (res []byte, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExportCSV")
	defer scope.End()
	defer scope.TraceIfError(&err)

	guests, err := s.repo.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldID, SortDir: gDto.SortDirAsc}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest responses for export")

		return nil, fmt.Errorf("failed to get guest responses for export: %w", err)
	}

	var buf bytes.Buffer

	writer := csv.NewWriter(&buf)

	if err = writer.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, guest := range guests {
		if err = writer.Write(csvRow(guest)); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	writer.Flush()

	if err = writer.Error(); err != nil {
		log.Error().Err(err).Msg("failed to flush csv export")

		return nil, fmt.Errorf("failed to flush csv export: %w", err)
	}

	scope.SetAttribute("export.rows", len(guests))

	return buf.Bytes(), nil
}

func csvRow(guest model.GuestResponse) []string {
	return []string{
		strconv.FormatInt(guest.ID, 10),
		guest.FirstName,
		guest.LastName,
		deref(guest.Email),
		strconv.Itoa(guest.PartySize),
		string(guest.Availability),
		derefInt(guest.TableNumber),
		deref(guest.Notes),
		timezone.Format(guest.CreatedAt, constant.DateFormat),
	}
}

func deref(value *string) string {
	if value == nil {
		return ""
	}

	return *value
}

func derefInt(value *int) string {
	if value == nil {
		return ""
	}

	return strconv.Itoa(*value)
}
