package testutil

import (
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/GCF14/JJ-Apartments-Property-Management-System/internal/config"
)

// AccessToken signs an access token the way the login service does, using
// the configured JWT_SECRET.
func AccessToken(t *testing.T, userID uint, email string) string {
	t.Helper()

	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":    userID,
		"email":      email,
		"token_type": "access",
		"exp":        now.Add(15 * time.Minute).Unix(),
		"iat":        now.Unix(),
		"nbf":        now.Unix(),
		"iss":        "jjapartments-login",
		"sub":        strconv.FormatUint(uint64(userID), 10),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(config.Get().JWTSecret))
	if err != nil {
		t.Fatalf("failed to sign access token: %v", err)
	}
	return token
}
