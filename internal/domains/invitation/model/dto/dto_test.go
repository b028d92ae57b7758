package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"guestlist/internal/domains/invitation/model"
	"guestlist/internal/domains/invitation/model/dto"
	"guestlist/shared/constant"
)

func TestSendInvitationRequest_ToEmailData(t *testing.T) {
	req := dto.SendInvitationRequest{
		Email:     "jean@example.com",
		FirstName: " Jean ",
		LastName:  "Dupont",
		Message:   "  See you there!\n",
	}

	data := req.ToEmailData(model.Event{Name: "Garden Party"})

	assert.Equal(t, "Jean", data.FirstName)
	assert.Equal(t, "Dupont", data.LastName)
	assert.Equal(t, "See you there!", data.Message)
	assert.Equal(t, "Garden Party", data.Event.Name)
}

func TestNewPDFDocument(t *testing.T) {
	doc := dto.NewPDFDocument(42, []byte("%PDF-1.3"))

	assert.Equal(t, "invitation-42.pdf", doc.FileName)
	assert.Equal(t, constant.ContentTypePDF, doc.ContentType)
	assert.Empty(t, doc.URL)
}
