package models

type PropertyModel struct {
	ID        uint   `gorm:"primaryKey"`
	OwnerID   uint   `gorm:"not null;index"`
	Address   string `gorm:"size:255;not null"`
	City      string `gorm:"size:255;not null"`
	State     string `gorm:"size:2;not null"`
	ZipCode   string `gorm:"size:10;not null"`
	Notes     string `gorm:"type:text"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (PropertyModel) TableName() string {
	return "properties"
}
