package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ToastClaims identifies a pending toast notification. The token only
// carries the notification id; the message itself stays server side.
type ToastClaims struct {
	jwt.RegisteredClaims
}

func CreateToastToken(toastID string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &ToastClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        toastID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func ValidateToastToken(tokenString string, secret []byte) (*ToastClaims, error) {
	claims := &ToastClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.ID == "" {
		return nil, errors.New("invalid toast token")
	}

	return claims, nil
}
