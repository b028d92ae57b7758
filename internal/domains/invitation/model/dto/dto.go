package dto

import (
	"fmt"
	"guestlist/internal/domains/invitation/model"
	"guestlist/shared/constant"
	"strings"
)

type SendInvitationRequest struct {
	Email     string `json:"email"     validate:"required,email,notplaceholder,max=255"`
	FirstName string `json:"firstName" validate:"required,notblank,max=100"`
	LastName  string `json:"lastName"  validate:"required,notblank,max=100"`
	Message   string `json:"message"   validate:"omitempty,max=2000"`
}

// EmailData is what the invitation email templates render.
type EmailData struct {
	FirstName string
	LastName  string
	Message   string
	Event     model.Event
}

func (s *SendInvitationRequest) ToEmailData(event model.Event) EmailData {
	return EmailData{
		FirstName: strings.TrimSpace(s.FirstName),
		LastName:  strings.TrimSpace(s.LastName),
		Message:   strings.TrimSpace(s.Message),
		Event:     event,
	}
}

// Document is a rendered invitation. URL is set only when the document was archived.
type Document struct {
	FileName    string
	ContentType string
	Data        []byte
	URL         string
}

func NewPDFDocument(guestID int64, data []byte) Document {
	return Document{
		FileName:    fmt.Sprintf("invitation-%d.pdf", guestID),
		ContentType: constant.ContentTypePDF,
		Data:        data,
	}
}
