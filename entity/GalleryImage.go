package entity

import "time"

type GalleryImage struct {
	Document
	URL        string    `gorm:"not null" json:"url" binding:"required,url"`
	Title      string    `json:"title,omitempty"`
	Category   string    `gorm:"index" json:"category,omitempty"`
	PublicID   string    `json:"publicId,omitempty"`
	UploadedAt time.Time `json:"uploadedAt"`
}

func (g *GalleryImage) SetImage(url, publicID string) {
	g.URL = url
	g.PublicID = publicID
}
