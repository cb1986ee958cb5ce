package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kharcha/internal/config"
	apperrors "kharcha/internal/errors"
	"kharcha/internal/middleware"
	"kharcha/internal/models"
	"kharcha/internal/services"
	"kharcha/internal/token"
)

// AuthHandler handles registration, login, and the profile view.
type AuthHandler struct {
	users    services.UserServicer
	expenses services.ExpenseServicer
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(users services.UserServicer, expenses services.ExpenseServicer) *AuthHandler {
	return &AuthHandler{users: users, expenses: expenses}
}

// RegisterRequest represents the registration request payload
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,not_blank,max=100"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,max=128"`
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse represents the user data in responses. It never carries
// the password hash.
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func newUserResponse(user *models.User) UserResponse {
	return UserResponse{ID: user.ID, Name: user.Name, Email: user.Email}
}

// Register handles POST /user/register. Registration and login are
// decoupled: no token is issued here.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "All fields are required"))
		return
	}

	user, err := h.users.CreateUser(req.Name, req.Email, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    newUserResponse(user),
	})
}

// Login handles POST /user/login. On success it returns the token in the
// body and also sets it as a SameSite cookie for browser clients.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "All fields are required"))
		return
	}

	user, err := h.users.Authenticate(req.Email, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	tok, err := token.Issue(user)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	h.setTokenCookie(c, tok)

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged in successfully",
		"token":   tok,
		"user":    newUserResponse(user),
	})
}

// setTokenCookie stores the token in a SameSite=Lax, HttpOnly cookie whose
// lifetime matches the token expiry.
func (h *AuthHandler) setTokenCookie(c *gin.Context, tok string) {
	maxAge := int(config.Get().JWTExpirationDur.Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, tok, maxAge, "/", "", false, true)
}

// GetProfile handles GET /user/profile. It returns the user without the
// password hash, the full expense list, and the aggregates computed over
// it. The aggregation runs on every call; there is no caching.
func (h *AuthHandler) GetProfile(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenses, err := h.expenses.GetUserExpenses(user.ID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":     newUserResponse(user),
		"expenses": expenses,
		"summary":  services.SummarizeExpenses(expenses),
	})
}
