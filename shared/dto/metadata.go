package dto

import (
	"hostel/shared/constant"
	"hostel/shared/model"
	"hostel/shared/timezone"
)

// Metadata is the audit trail attached to every record in responses.
// Timestamps are rendered in the hostel timezone.
type Metadata struct {
	CreatedAt  string `json:"created_at"`
	CreatedBy  string `json:"created_by"`
	ModifiedAt string `json:"modified_at"`
	ModifiedBy string `json:"modified_by"`
}

func NewMetadata(m model.Metadata) Metadata {
	return Metadata{
		CreatedAt:  timezone.Format(m.CreatedAt, constant.DateFormat),
		CreatedBy:  m.CreatedBy,
		ModifiedAt: timezone.Format(m.ModifiedAt, constant.DateFormat),
		ModifiedBy: m.ModifiedBy,
	}
}

func (m *Metadata) FromModel(src model.Metadata) {
	*m = NewMetadata(src)
}
