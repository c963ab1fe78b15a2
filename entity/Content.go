package entity

// Content is one editable text block; (section, key) is unique.
type Content struct {
	Document
	Section string `gorm:"not null;uniqueIndex:idx_content_section_key" json:"section" binding:"required"`
	Key     string `gorm:"column:content_key;not null;uniqueIndex:idx_content_section_key" json:"key" binding:"required"`
	Value   string `gorm:"type:text" json:"value"`
}
