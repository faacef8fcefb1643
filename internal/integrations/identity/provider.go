package identity

import (
	"fmt"
	"strconv"

	jwt "github.com/golang-jwt/jwt/v5"
)

// SessionClaims полезная нагрузка сессионного токена
// Subject содержит идентификатор пользователя
type SessionClaims struct {
	jwt.RegisteredClaims
}

// Provider проверяет сессионные токены и извлекает идентификатор пользователя
type Provider struct {
	secret []byte
}

// NewProvider создает провайдер с HS256-секретом
func NewProvider(secret string) *Provider {
	return &Provider{secret: []byte(secret)}
}

// ParseSession проверяет токен и возвращает ID пользователя
// Любая проблема с токеном схлопывается в ErrUnauthenticated
func (p *Provider) ParseSession(token string) (int64, error) {
	if token == "" {
		return 0, ErrUnauthenticated
	}

	parsed, err := jwt.ParseWithClaims(token, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return p.secret, nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}

	claims, ok := parsed.Claims.(*SessionClaims)
	if !ok || !parsed.Valid {
		return 0, ErrUnauthenticated
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return 0, fmt.Errorf("%w: subject %q", ErrInvalidClaims, claims.Subject)
	}

	return userID, nil
}
