package identity

import "errors"

var (
	// ErrUnauthenticated возвращается, когда сессионный токен отсутствует,
	// просрочен или не проходит проверку подписи
	ErrUnauthenticated = errors.New("identity: unauthenticated")

	// ErrInvalidClaims возвращается, когда токен валиден, но не содержит
	// пригодного идентификатора пользователя
	ErrInvalidClaims = errors.New("identity: invalid session claims")
)
