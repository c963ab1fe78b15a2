package entity

type Service struct {
	Document
	Title       string `gorm:"not null" json:"title" binding:"required"`
	Description string `gorm:"not null" json:"description" binding:"required"`
	Icon        string `json:"icon,omitempty"`
	IsActive    bool   `gorm:"index" json:"isActive"`
}
