package entity

// Offer dates are ISO calendar dates ("2006-01-02") so they compare as strings.
type Offer struct {
	Document
	Title       string `gorm:"not null" json:"title" binding:"required"`
	Description string `gorm:"not null" json:"description" binding:"required"`
	Discount    string `json:"discount,omitempty"`
	Code        string `gorm:"size:50;index" json:"code,omitempty"`
	StartDate   string `json:"startDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	EndDate     string `json:"endDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	IsActive    bool   `gorm:"index" json:"isActive"`
}
