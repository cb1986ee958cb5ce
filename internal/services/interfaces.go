package services

import (
	"time"

	"kharcha/internal/models"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(name, email, password string) (*models.User, error)
	Authenticate(email, password string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
}

// ExpenseServicer defines the contract for expense-related business logic.
type ExpenseServicer interface {
	CreateExpense(userID, title string, amount float64, category string, date time.Time) (*models.Expense, error)
	GetUserExpenses(userID string) ([]models.Expense, error)
}

// ExpenseSummary contains the aggregates computed over a user's expense
// set for the profile view: total spend, per-category totals, and twelve
// per-month buckets for charting.
type ExpenseSummary struct {
	Total          float64            `json:"total"`
	CategoryTotals map[string]float64 `json:"category_totals"`
	MonthlyTotals  [12]float64        `json:"monthly_totals"`
	TopCategory    string             `json:"top_category"`
}
