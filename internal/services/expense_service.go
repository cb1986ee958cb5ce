package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "kharcha/internal/errors"
	"kharcha/internal/models"
)

// expenseService handles expense-related business logic.
type expenseService struct {
	db *gorm.DB
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB) ExpenseServicer {
	return &expenseService{db: db}
}

// CreateExpense records a new expense owned by userID. The owner always
// comes from the authenticated caller; payloads cannot assign expenses to
// other users. Amount and date carry no range or format checks beyond
// presence, matching the published contract.
func (s *expenseService) CreateExpense(userID, title string, amount float64, category string, date time.Time) (*models.Expense, error) {
	if userID == "" || title == "" || amount == 0 || category == "" || date.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "title, amount, category and date are required")
	}

	expense := &models.Expense{
		UserID:   userID,
		Title:    title,
		Amount:   amount,
		Category: category,
		Date:     date,
	}

	if err := s.db.Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return expense, nil
}

// GetUserExpenses returns all expenses owned by the user, newest first.
func (s *expenseService) GetUserExpenses(userID string) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := s.db.Where("user_id = ?", userID).Order("date DESC").Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}
