package utils

import (
	"context"
)

type contextKey string

const ContextUserIDKey contextKey = "userID"

func GetUserIDFromContext(ctx context.Context) (uint, bool) {
	userID := ctx.Value(ContextUserIDKey)
	id, ok := userID.(uint)
	return id, ok
}
