package dto

import (
	"homeward/internal/domain/property"
	"homeward/internal/shared/biztime"
)

type PropertyDTO struct {
	ID          uint   `json:"id"`
	OwnerID     uint   `json:"owner_id"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	ZipCode     string `json:"zip_code"`
	Notes       string `json:"notes,omitempty"`
	FullAddress string `json:"full_address"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func FromProperty(p *property.Property) *PropertyDTO {
	return &PropertyDTO{
		ID:          p.ID(),
		OwnerID:     p.OwnerID(),
		Address:     p.Address(),
		City:        p.City(),
		State:       p.State().String(),
		ZipCode:     p.ZipCode().String(),
		Notes:       p.Notes(),
		FullAddress: p.FullAddress(),
		CreatedAt:   biztime.FormatRFC3339(p.CreatedAt()),
		UpdatedAt:   biztime.FormatRFC3339(p.UpdatedAt()),
	}
}

func FromProperties(props []*property.Property) []*PropertyDTO {
	dtos := make([]*PropertyDTO, 0, len(props))
	for _, p := range props {
		dtos = append(dtos, FromProperty(p))
	}
	return dtos
}
