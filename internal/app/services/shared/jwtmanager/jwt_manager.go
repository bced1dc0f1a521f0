package jwtmanager

import (
	"errors"
	"time"

	"serenemind-service/internal/app/config"

	"github.com/golang-jwt/jwt/v4"
)

// JWTManager signs and verifies the admin dashboard tokens (HS256).
type JWTManager struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTManager(cfg *config.InternalConfig) (*JWTManager, error) {
	if cfg.Admin.JWTSecret == "" {
		return nil, errors.New("ADMIN_JWT_SECRET is empty")
	}
	ttl := time.Duration(cfg.Admin.JWTExpTimeInHour) * time.Hour
	if ttl <= 0 {
		ttl = 8 * time.Hour
	}
	return &JWTManager{
		secret: []byte(cfg.Admin.JWTSecret),
		ttl:    ttl,
	}, nil
}

func (m *JWTManager) TTL() time.Duration {
	return m.ttl
}

func (m *JWTManager) CreateToken(subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *JWTManager) VerifyToken(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", errors.New("token is not valid")
	}
	return claims.Subject, nil
}
