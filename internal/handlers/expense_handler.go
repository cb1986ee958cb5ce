package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "kharcha/internal/errors"
	"kharcha/internal/services"
)

// ExpenseHandler handles expense-related requests.
type ExpenseHandler struct {
	expenses services.ExpenseServicer
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(expenses services.ExpenseServicer) *ExpenseHandler {
	return &ExpenseHandler{expenses: expenses}
}

// AddExpenseRequest represents the add-expense request payload. There is
// deliberately no owner field; ownership always comes from the gate.
type AddExpenseRequest struct {
	Title    string  `json:"title" binding:"required,not_blank,max=255"`
	Amount   float64 `json:"amount" binding:"required"`
	Category string  `json:"category" binding:"required,not_blank,max=100"`
	Date     string  `json:"date" binding:"required"`
}

// AddExpense handles POST /expense/add. Requires the auth gate; the new
// record is owned by the authenticated caller.
func (h *ExpenseHandler) AddExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AddExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Please fill all fields"))
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenses.CreateExpense(userID, req.Title, req.Amount, req.Category, date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Expense added successfully",
		"expense": expense,
	})
}
