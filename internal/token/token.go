package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Service signs and verifies the bearer tokens handed out by login.
// TTL of zero means issued tokens never expire.
type Service struct {
	Secret []byte
	TTL    time.Duration
}

func (s *Service) Issue(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"userId": userID,
	}
	if s.TTL > 0 {
		claims["exp"] = time.Now().Add(s.TTL).Unix()
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.Secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

func (s *Service) Parse(raw string) (uint, error) {
	t, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.Secret, nil
	})
	if err != nil {
		return 0, fmt.Errorf("parse token: %w", err)
	}
	if !t.Valid {
		return 0, fmt.Errorf("invalid token")
	}

	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return 0, fmt.Errorf("invalid token claims")
	}
	idRaw, ok := claims["userId"].(float64)
	if !ok {
		return 0, fmt.Errorf("missing userId claim")
	}

	return uint(idRaw), nil
}
