package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Document is the base of every stored entity: a server-assigned id plus
// timestamps maintained by gorm.
type Document struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

// Base exposes the embedded document so generic code can read and reset
// the server-owned fields.
func (d *Document) Base() *Document { return d }

// Record is implemented by every entity through the embedded Document.
type Record interface {
	Base() *Document
}

// ImageTarget is implemented by entities that carry a hosted image.
type ImageTarget interface {
	SetImage(url, publicID string)
}
