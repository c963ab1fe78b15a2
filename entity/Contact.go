package entity

type ContactStatus string

const (
	ContactUnread  ContactStatus = "unread"
	ContactRead    ContactStatus = "read"
	ContactReplied ContactStatus = "replied"
)

// Rank orders the statuses; a contact message only ever moves forward.
func (s ContactStatus) Rank() int {
	switch s {
	case ContactUnread:
		return 0
	case ContactRead:
		return 1
	case ContactReplied:
		return 2
	}
	return -1
}

type Contact struct {
	Document
	Name    string        `gorm:"not null" json:"name" binding:"required"`
	Email   string        `gorm:"not null" json:"email" binding:"required,email"`
	Subject string        `gorm:"not null" json:"subject" binding:"required"`
	Message string        `gorm:"not null" json:"message" binding:"required"`
	Phone   string        `json:"phone,omitempty"`
	Status  ContactStatus `gorm:"not null;index;default:unread" json:"status" binding:"omitempty,oneof=unread read replied"`
}
