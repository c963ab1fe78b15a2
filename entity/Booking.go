package entity

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled:
		return true
	}
	return false
}

// Booking is a table reservation submitted from the public booking form.
type Booking struct {
	Document
	Name    string        `gorm:"not null" json:"name" binding:"required"`
	Email   string        `gorm:"not null" json:"email" binding:"required,email"`
	Phone   string        `gorm:"not null" json:"phone" binding:"required"`
	Date    string        `gorm:"not null;index" json:"date" binding:"required,datetime=2006-01-02"`
	Time    string        `gorm:"not null" json:"time" binding:"required,datetime=15:04"`
	Guests  int           `gorm:"not null" json:"guests" binding:"required,min=1"`
	Message string        `json:"message,omitempty"`
	Status  BookingStatus `gorm:"not null;index;default:pending" json:"status" binding:"omitempty,oneof=pending confirmed cancelled"`
}
