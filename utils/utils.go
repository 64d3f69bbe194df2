package utils

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

func HashPassword(pwd string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcryptCost)
	return string(hash), err
}

func CheckPassword(hash, pwd string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pwd)) == nil
}

// GenerateJWT signs an HS256 token carrying the username. The returned
// value includes the "Bearer " prefix expected by the auth middleware.
func GenerateJWT(username, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"username": username,
		"exp":      now.Add(ttl).Unix(),
		"iat":      now.Unix(),
		"nbf":      now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}
	return "Bearer " + signed, nil
}

// ParseJWT validates a token (with or without the "Bearer " prefix) and
// returns the username and unix expiry.
func ParseJWT(tk, secret string) (string, int64, error) {
	tk = strings.TrimSpace(tk)
	if strings.HasPrefix(strings.ToLower(tk), "bearer ") {
		tk = strings.TrimSpace(tk[7:])
	}
	if tk == "" {
		return "", 0, errors.New("empty token")
	}
	token, err := jwt.Parse(tk, func(token *jwt.Token) (interface{}, error) {
		// Pin the algorithm family so a crafted "alg" header cannot
		// bypass verification.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", 0, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", 0, errors.New("invalid token")
	}
	username, ok := claims["username"].(string)
	if !ok || username == "" {
		return "", 0, errors.New("username claim missing")
	}
	// exp arrives as float64 after JSON decoding.
	exp, ok := claims["exp"].(float64)
	if !ok {
		return "", 0, errors.New("exp claim missing")
	}
	return username, int64(exp), nil
}
