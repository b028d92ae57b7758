// Package document renders the printable invitation of a guest.
package document

//go:generate go run go.uber.org/mock/mockgen -source=./document.go -destination=../mocks/document_mock.go -package=mocks

import (
	"bytes"
	"fmt"
	"guestlist/internal/domains/invitation/model"
	rsvpModel "guestlist/internal/domains/rsvp/model"

	"github.com/go-pdf/fpdf"
)

const (
	pageOrientation = "P"
	pageUnit        = "mm"
	pageSize        = "A5"

	margin      = 15.0
	frameInset  = 7.0
	lineHeight  = 7.0
	titleHeight = 11.0
)

type Renderer interface {
	Render(guest rsvpModel.GuestResponse, event model.Event) ([]byte, error)
}

type pdfRenderer struct{}

func NewRenderer() Renderer {
	return &pdfRenderer{}
}

// Render lays out a single A5 page and returns the PDF bytes.
func (r *pdfRenderer) Render(guest rsvpModel.GuestResponse, event model.Event) ([]byte, error) {
	pdf := fpdf.New(pageOrientation, pageUnit, pageSize, "")
	pdf.SetTitle("Invitation "+guest.FullName(), true)
	pdf.SetCreator(event.Hosts, true)
	pdf.SetMargins(margin, margin+5, margin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	// core fonts are cp1252, names with accents need translating
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	width, height := pdf.GetPageSize()

	pdf.SetDrawColor(150, 120, 60)
	pdf.SetLineWidth(0.6)
	pdf.Rect(frameInset, frameInset, width-2*frameInset, height-2*frameInset, "D")

	pdf.SetTextColor(150, 120, 60)
	pdf.SetFont("Times", "I", 14)
	pdf.CellFormat(0, lineHeight, tr("Invitation"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetTextColor(30, 30, 30)
	pdf.SetFont("Times", "B", 22)
	pdf.MultiCell(0, titleHeight, tr(event.Name), "", "C", false)
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 12)
	pdf.MultiCell(0, lineHeight, tr(fmt.Sprintf("Dear %s,", guest.FullName())), "", "C", false)
	pdf.Ln(2)

	if event.Hosts != "" {
		pdf.MultiCell(0, lineHeight, tr(event.Hosts+" would be delighted to welcome you."), "", "C", false)
		pdf.Ln(2)
	}

	pdf.MultiCell(0, lineHeight, tr(partyLine(guest.PartySize)), "", "C", false)
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 12)

	for _, line := range detailLines(guest, event) {
		pdf.MultiCell(0, lineHeight, tr(line), "", "C", false)
	}

	if event.URL != "" {
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetY(height - margin - lineHeight)
		pdf.CellFormat(0, lineHeight, event.URL, "", 0, "C", false, 0, event.URL)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render invitation: %w", err)
	}

	return buf.Bytes(), nil
}

func partyLine(partySize int) string {
	if partySize > 1 {
		return fmt.Sprintf("This invitation is valid for %d guests.", partySize)
	}

	return "This invitation is valid for one guest."
}

func detailLines(guest rsvpModel.GuestResponse, event model.Event) []string {
	lines := []string{}

	if event.Dates != "" {
		lines = append(lines, event.Dates)
	}

	if event.Venue != "" {
		lines = append(lines, event.Venue)
	}

	if guest.TableNumber != nil {
		lines = append(lines, fmt.Sprintf("Table %d", *guest.TableNumber))
	}

	return lines
}
