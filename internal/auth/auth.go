// Package auth implements password hashing and the JWT access tokens
// used by the API.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/madhannmady/Expense-tracker-application/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// ContextKey is the gin context key the claims of an authenticated
// request are stored under.
const ContextKey = "user"

// TokenLifetime is how long an issued token stays valid.
const TokenLifetime = 7 * 24 * time.Hour

var ErrInvalidToken = errors.New("Not authorized, token failed")

var secret = []byte("dev-insecure-secret-change")

// SetSecret sets the signing secret for all tokens. Must be called
// before serving requests, the default only exists for development.
func SetSecret(s string) {
	if s != "" {
		secret = []byte(s)
	}
}

// Claims are the JWT claims carried by an access token.
type Claims struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// HashPassword hashes a cleartext password for storage.
func HashPassword(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
}

// CheckPassword verifies a cleartext password against the stored hash.
func CheckPassword(hash []byte, password string) error {
	return bcrypt.CompareHashAndPassword(hash, []byte(password))
}

// NewToken issues a signed token for the user, expiring after
// TokenLifetime.
func NewToken(user models.User) (string, error) {
	claims := Claims{
		ID:       user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenLifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseToken verifies a token string and returns its claims.
func ParseToken(tokenString string) (Claims, error) {
	var claims Claims

	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrInvalidKeyType
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return Claims{}, ErrInvalidToken
	}

	return claims, nil
}
