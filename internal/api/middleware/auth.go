package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/barberhub/booking-service/internal/api/handlers"
)

const msgUnauthorized = "требуется вход в систему"

type userIDKey struct{}

// SessionParser проверяет сессионный токен и возвращает ID пользователя
type SessionParser interface {
	ParseSession(token string) (int64, error)
}

// Auth middleware аутентификации по сессионному токену
// Токен передаётся как Bearer в заголовке Authorization; при отсутствии
// или невалидности токена запрос завершается 401
func Auth(parser SessionParser, log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)

			userID, err := parser.ParseSession(token)
			if err != nil {
				log.Warn("%s %s - Unauthorized: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

// WithUserID кладёт ID пользователя в контекст
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserID достаёт ID аутентифицированного пользователя из контекста
// Возвращает 0, если пользователь не аутентифицирован
func UserID(ctx context.Context) int64 {
	if id, ok := ctx.Value(userIDKey{}).(int64); ok {
		return id
	}
	return 0
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
