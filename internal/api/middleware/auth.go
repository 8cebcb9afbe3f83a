// Package middleware содержит HTTP middleware: аутентификация персонала
// и сбор метрик запросов
package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-DayCenterService/internal/api/handlers"
	"github.com/m04kA/SMC-DayCenterService/internal/domain"
)

type ctxKey int

const (
	userIDKey ctxKey = iota
	userRoleKey
)

const (
	headerUserID   = "X-User-ID"
	headerUserRole = "X-User-Role"

	msgMissingUserID = "отсутствует заголовок X-User-ID"
	msgInvalidUserID = "некорректный заголовок X-User-ID"
	msgInvalidRole   = "некорректный заголовок X-User-Role"
)

// Auth извлекает ID и роль сотрудника из заголовков запроса
// X-User-ID обязателен; X-User-Role по умолчанию operator
// Выдача и проверка токенов - на API gateway, сюда приходят уже
// аутентифицированные запросы
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get(headerUserID)
		if userIDStr == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgInvalidUserID)
			return
		}

		role := domain.RoleOperator
		if roleStr := r.Header.Get(headerUserRole); roleStr != "" {
			role = domain.ActorRole(roleStr)
			if role != domain.RoleOperator && role != domain.RoleAdmin {
				handlers.RespondUnauthorized(w, msgInvalidRole)
				return
			}
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, userRoleKey, role)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает ID сотрудника из контекста запроса
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}

// GetUserRole возвращает роль сотрудника из контекста запроса
func GetUserRole(ctx context.Context) (domain.ActorRole, bool) {
	role, ok := ctx.Value(userRoleKey).(domain.ActorRole)
	return role, ok
}
