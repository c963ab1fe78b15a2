package entity

type MenuType string

const (
	MenuTypeBeverage MenuType = "beverage"
	MenuTypeVeg      MenuType = "veg"
	MenuTypeNonVeg   MenuType = "nonveg"
	MenuTypeMixed    MenuType = "mixed"
)

type MenuItem struct {
	Document
	Name          string   `gorm:"not null;index" json:"name" binding:"required"`
	Category      string   `gorm:"not null;index" json:"category" binding:"required"`
	Subcategory   string   `json:"subcategory,omitempty"`
	Price         string   `json:"price,omitempty"` // free text, e.g. "₹450" or "MP"
	Description   string   `json:"description,omitempty"`
	IsSignature   bool     `json:"isSignature"`
	Type          MenuType `gorm:"not null" json:"type" binding:"required,oneof=beverage veg nonveg mixed"`
	Image         string   `json:"image,omitempty"`
	ImagePublicID string   `json:"imagePublicId,omitempty"`
}

func (m *MenuItem) SetImage(url, publicID string) {
	m.Image = url
	m.ImagePublicID = publicID
}
