package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"kharcha/internal/handlers"
	"kharcha/internal/logger"
	"kharcha/internal/middleware"
	"kharcha/internal/services"
	"kharcha/internal/testutil"
	"kharcha/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupApp creates a full application stack backed by an isolated
// in-memory SQLite database. The router mirrors cmd/api, minus the rate
// limiter so repeated logins in a test cannot trip it.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := testutil.SetupTestDB(t)

	userService := services.NewUserService(db)
	expenseService := services.NewExpenseService(db)

	authHandler := handlers.NewAuthHandler(userService, expenseService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	router.POST("/user/register", authHandler.Register)
	router.POST("/user/login", authHandler.Login)

	authGate := middleware.Auth(userService)
	router.GET("/user/profile", authGate, authHandler.GetProfile)
	router.POST("/expense/add", authGate, expenseHandler.AddExpense)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router. A non-empty token is
// sent as an Authorization: Bearer header.
func (a *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, req)
	return rec
}

// requestWithCookie makes a request carrying the token in the auth cookie
// instead of the Authorization header.
func (a *testApp) requestWithCookie(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: middleware.TokenCookie, Value: token})
	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, req)
	return rec
}

// registerUser registers a user and returns nothing; registration issues
// no token in this API.
func (a *testApp) registerUser(t *testing.T, name, email, password string) {
	t.Helper()
	body := fmt.Sprintf(`{"name":%q,"email":%q,"password":%q}`, name, email, password)
	rec := a.request("POST", "/user/register", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("registration failed: %d %s", rec.Code, rec.Body.String())
	}
}

// loginUser logs in and returns the issued token and the user's ID.
func (a *testApp) loginUser(t *testing.T, email, password string) (string, string) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	rec := a.request("POST", "/user/login", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	token, _ := result["token"].(string)
	user, _ := result["user"].(map[string]interface{})
	id, _ := user["id"].(string)
	return token, id
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	result := parseJSON(t, rec)
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in body: %s", rec.Body.String())
	}
	return errObj["code"].(string)
}
