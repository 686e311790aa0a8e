package dbmetrics

import "context"

type ctxKey struct{}

// WithExecutor кладет активный исполнитель (обычно транзакцию) в контекст.
// Репозитории достают его через GetExecutor и выполняют запросы в рамках
// одной транзакции без явной передачи *sql.Tx.
func WithExecutor(ctx context.Context, exec DBExecutor) context.Context {
	return context.WithValue(ctx, ctxKey{}, exec)
}

// GetExecutor возвращает исполнитель из контекста или fallback,
// если транзакция не начата
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if exec, ok := ctx.Value(ctxKey{}).(DBExecutor); ok {
		return exec
	}
	return fallback
}

// IsInTransaction проверяет, есть ли в контексте активная транзакция
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(ctxKey{}).(DBExecutor)
	return ok
}
