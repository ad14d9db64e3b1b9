package property

import (
	"homeward/internal/application/property/usecases"
	"homeward/internal/shared/authorization"
)

type CreatePropertyRequest struct {
	Address string `json:"address" binding:"required,max=255"`
	City    string `json:"city" binding:"required,max=255"`
	State   string `json:"state" binding:"required,len=2,us_state"`
	ZipCode string `json:"zip_code" binding:"required,us_zip"`
	Notes   string `json:"notes" binding:"max=1000"`
}

func (r *CreatePropertyRequest) ToCommand(actor authorization.Actor) usecases.CreatePropertyCommand {
	return usecases.CreatePropertyCommand{
		Actor:   actor,
		Address: r.Address,
		City:    r.City,
		State:   r.State,
		ZipCode: r.ZipCode,
		Notes:   r.Notes,
	}
}

type UpdatePropertyRequest struct {
	Address *string `json:"address" binding:"omitempty,max=255"`
	City    *string `json:"city" binding:"omitempty,max=255"`
	State   *string `json:"state" binding:"omitempty,len=2,us_state"`
	ZipCode *string `json:"zip_code" binding:"omitempty,us_zip"`
	Notes   *string `json:"notes" binding:"omitempty,max=1000"`
}

func (r *UpdatePropertyRequest) ToCommand(actor authorization.Actor, propertyID uint) usecases.UpdatePropertyCommand {
	return usecases.UpdatePropertyCommand{
		Actor:      actor,
		PropertyID: propertyID,
		Address:    r.Address,
		City:       r.City,
		State:      r.State,
		ZipCode:    r.ZipCode,
		Notes:      r.Notes,
	}
}
