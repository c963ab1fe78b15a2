package entity

const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superadmin"
)

// SetupSlotFirstAdmin is the only value the setup path writes to SetupSlot;
// the unique index lets the database reject a second setup admin.
const SetupSlotFirstAdmin = 1

type Admin struct {
	Document
	Email     string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Name      string `gorm:"not null" json:"name"`
	Password  string `gorm:"not null" json:"-"`
	Role      string `gorm:"not null;default:admin" json:"role"`
	SetupSlot *int   `gorm:"uniqueIndex" json:"-"`
}
