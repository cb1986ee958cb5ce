package models

import "time"

// Expense represents a single expense record owned by a user.
//
// Category is an open string: the UI suggests a handful of values but the
// server accepts any non-blank name. The owner is always taken from the
// authenticated caller, never from request payloads. Expenses are
// create-and-read only; there is no update or delete operation.
type Expense struct {
	Base
	UserID   string    `gorm:"type:uuid;not null;index:idx_expenses_user_date" json:"user_id"`
	Title    string    `gorm:"not null" json:"title"`
	Amount   float64   `gorm:"not null" json:"amount"`
	Category string    `gorm:"not null" json:"category"`
	Date     time.Time `gorm:"not null;index:idx_expenses_user_date" json:"date"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}
