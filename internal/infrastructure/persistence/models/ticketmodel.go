package models

type TicketModel struct {
	ID          uint   `gorm:"primaryKey"`
	PropertyID  uint   `gorm:"not null;index"`
	SubmitterID uint   `gorm:"not null;index"`
	AssigneeID  *uint  `gorm:"index"`
	AreaOfIssue string `gorm:"size:255;not null"`
	Description string `gorm:"type:text;not null"`
	ImagePath   string `gorm:"size:500"`
	Status      string `gorm:"size:20;not null;index"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (TicketModel) TableName() string {
	return "tickets"
}

type CommentModel struct {
	ID         uint   `gorm:"primaryKey"`
	TicketID   uint   `gorm:"not null;index"`
	AuthorID   uint   `gorm:"not null;index"`
	Body       string `gorm:"type:text;not null"`
	IsInternal bool   `gorm:"not null;default:false"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt  int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (CommentModel) TableName() string {
	return "ticket_comments"
}
