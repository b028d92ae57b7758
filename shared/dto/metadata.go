package dto

import (
	"guestlist/shared/constant"
	"guestlist/shared/model"
	"guestlist/shared/timezone"
)

type Metadata struct {
	CreatedAt string `json:"createdAt"`
}

func (m *Metadata) FromModel(model model.Metadata) {
	m.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
}
