package models

// User represents a registered user.
//
// The password hash is excluded from JSON serialization on every read
// path. Email uniqueness is enforced by the database index so that
// concurrent registrations with the same address cannot both succeed.
type User struct {
	Base
	Name     string    `gorm:"not null" json:"name"`
	Email    string    `gorm:"uniqueIndex;not null" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Expenses []Expense `gorm:"foreignKey:UserID" json:"expenses,omitempty"`
}
