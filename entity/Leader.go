package entity

type Leader struct {
	Document
	Name          string `gorm:"not null" json:"name" binding:"required"`
	Role          string `gorm:"not null" json:"role" binding:"required"`
	Description   string `gorm:"not null" json:"description" binding:"required"`
	Image         string `json:"image,omitempty"`
	ImagePublicID string `json:"imagePublicId,omitempty"`
}

func (l *Leader) SetImage(url, publicID string) {
	l.Image = url
	l.ImagePublicID = publicID
}
