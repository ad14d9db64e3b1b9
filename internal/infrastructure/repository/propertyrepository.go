package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"homeward/internal/domain/property"
	"homeward/internal/infrastructure/persistence/mappers"
	"homeward/internal/infrastructure/persistence/models"
	db "homeward/internal/shared/db"
)

type PropertyRepository struct {
	db     *gorm.DB
	mapper mappers.PropertyMapper
}

func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{
		db:     db,
		mapper: mappers.NewPropertyMapper(),
	}
}

func (r *PropertyRepository) Save(ctx context.Context, p *property.Property) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save property: %w", err)
	}

	if err := p.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *PropertyRepository) Update(ctx context.Context, p *property.Property) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.PropertyModel{}).
		Where("id = ?", model.ID).
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update property: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

func (r *PropertyRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.PropertyModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete property: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("property not found")
	}
	return nil
}

func (r *PropertyRepository) FindByID(ctx context.Context, id uint) (*property.Property, error) {
	var model models.PropertyModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("property not found")
		}
		return nil, fmt.Errorf("failed to find property: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *PropertyRepository) ListByOwner(ctx context.Context, ownerID uint) ([]*property.Property, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var propertyModels []models.PropertyModel
	if err := tx.
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&propertyModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}

	return r.toDomainList(propertyModels)
}

func (r *PropertyRepository) ListAll(ctx context.Context) ([]*property.Property, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var propertyModels []models.PropertyModel
	if err := tx.
		Order("created_at DESC").
		Find(&propertyModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}

	return r.toDomainList(propertyModels)
}

func (r *PropertyRepository) toDomainList(propertyModels []models.PropertyModel) ([]*property.Property, error) {
	properties := make([]*property.Property, len(propertyModels))
	for i, model := range propertyModels {
		p, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		properties[i] = p
	}
	return properties, nil
}
