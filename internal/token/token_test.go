package token

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"kharcha/internal/config"
	apperrors "kharcha/internal/errors"
	"kharcha/internal/models"
)

func testUser() *models.User {
	u := &models.User{Name: "Alice", Email: "alice@example.com"}
	u.ID = "0190a8a0-1111-7000-8000-000000000001"
	return u
}

func assertInvalidToken(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected verification to fail")
	}
	appErr, ok := err.(*apperrors.AppError)
	if !ok {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}
	if appErr.Code != apperrors.ErrInvalidToken.Code {
		t.Errorf("expected INVALID_TOKEN, got %s", appErr.Code)
	}
}

func TestIssueAndVerify(t *testing.T) {
	user := testUser()

	tok, err := Issue(user)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	claims, err := Verify(tok)
	if err != nil {
		t.Fatalf("failed to verify freshly issued token: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("expected user ID %s, got %s", user.ID, claims.UserID)
	}
	if claims.Email != user.Email {
		t.Errorf("expected email %s, got %s", user.Email, claims.Email)
	}
}

func TestVerifyTamperedSignature(t *testing.T) {
	tok, err := Issue(testUser())
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	// Flip one character in the signature segment
	parts := strings.Split(tok, ".")
	if len(parts) != 3 {
		t.Fatalf("expected 3 JWT segments, got %d", len(parts))
	}
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = Verify(tampered)
	assertInvalidToken(t, err)
}

func TestVerifyExpired(t *testing.T) {
	// Craft a token that is structurally valid but already expired,
	// signed with the real process secret.
	now := time.Now()
	claims := &Claims{
		UserID: "0190a8a0-1111-7000-8000-000000000001",
		Email:  "alice@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			NotBefore: jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			Issuer:    issuer,
			Subject:   "0190a8a0-1111-7000-8000-000000000001",
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(config.Get().JWTSecret))
	if err != nil {
		t.Fatalf("failed to sign expired token: %v", err)
	}

	_, err = Verify(tok)
	assertInvalidToken(t, err)
}

func TestVerifyMalformed(t *testing.T) {
	for _, tok := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		_, err := Verify(tok)
		assertInvalidToken(t, err)
	}
}

func TestVerifyRejectsUnsignedAlg(t *testing.T) {
	// alg=none must never pass, even with an empty signature
	claims := &Claims{UserID: "x"}
	tok := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	signed, err := tok.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("failed to build unsigned token: %v", err)
	}

	_, err = Verify(signed)
	assertInvalidToken(t, err)
}
