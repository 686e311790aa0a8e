package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/yydtours/YYD-BookingService/internal/api/handlers"
)

// HeaderUserID заголовок с ID аутентифицированного пользователя.
// Сам заголовок проставляет API gateway, здесь только проверка наличия.
const HeaderUserID = "X-User-ID"

type ctxKeyUserID struct{}

// Auth middleware для protected роутов: требует валидный X-User-ID
// и кладет его в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HeaderUserID)
		if raw == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "missing "+HeaderUserID+" header")
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondError(w, http.StatusUnauthorized, "invalid "+HeaderUserID+" header")
			return
		}

		ctx := context.WithValue(r.Context(), ctxKeyUserID{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserID возвращает ID пользователя, положенный Auth middleware
func UserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(ctxKeyUserID{}).(int64)
	return id, ok
}
