package mappers

import (
	"fmt"
	"time"

	"homeward/internal/domain/property"
	vo "homeward/internal/domain/property/valueobjects"
	"homeward/internal/infrastructure/persistence/models"
)

// PropertyMapper handles the conversion between Property domain entities and persistence models.
type PropertyMapper interface {
	ToModel(p *property.Property) *models.PropertyModel
	ToDomain(model *models.PropertyModel) (*property.Property, error)
}

type PropertyMapperImpl struct{}

func NewPropertyMapper() PropertyMapper {
	return &PropertyMapperImpl{}
}

func (m *PropertyMapperImpl) ToModel(p *property.Property) *models.PropertyModel {
	return &models.PropertyModel{
		ID:        p.ID(),
		OwnerID:   p.OwnerID(),
		Address:   p.Address(),
		City:      p.City(),
		State:     p.State().String(),
		ZipCode:   p.ZipCode().String(),
		Notes:     p.Notes(),
		CreatedAt: p.CreatedAt().UnixMilli(),
		UpdatedAt: p.UpdatedAt().UnixMilli(),
	}
}

func (m *PropertyMapperImpl) ToDomain(model *models.PropertyModel) (*property.Property, error) {
	state, ok := vo.NewUSState(model.State)
	if !ok {
		return nil, fmt.Errorf("failed to map property (id=%d): invalid state %q", model.ID, model.State)
	}
	zip, ok := vo.NewZipCode(model.ZipCode)
	if !ok {
		return nil, fmt.Errorf("failed to map property (id=%d): invalid zip code %q", model.ID, model.ZipCode)
	}

	return property.ReconstructProperty(
		model.ID,
		model.OwnerID,
		model.Address,
		model.City,
		state,
		zip,
		model.Notes,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
