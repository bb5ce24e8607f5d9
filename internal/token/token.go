package token

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMissing maps to 401, ErrInvalid to 403.
	ErrMissing = errors.New("token missing")
	ErrInvalid = errors.New("token invalid")
)

type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Service signs and verifies HS256 bearer tokens carrying an email claim.
// A zero ttl issues tokens without an exp claim.
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewService(secret string, ttl time.Duration) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *Service) Issue(email string) (string, error) {
	now := s.now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if s.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (s *Service) Verify(tokenString string) (*Claims, error) {
	if strings.TrimSpace(tokenString) == "" {
		return nil, ErrMissing
	}

	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(t *jwt.Token) (interface{}, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !tok.Valid {
		return nil, ErrInvalid
	}
	return claims, nil
}

// FromHeader extracts the token from an "Authorization: Bearer <token>"
// value. An empty header yields ErrMissing; anything else that is not a
// bearer credential yields an empty token, which Verify rejects as invalid.
func FromHeader(header string) (string, error) {
	if header == "" {
		return "", ErrMissing
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", nil
	}
	return strings.TrimSpace(parts[1]), nil
}
