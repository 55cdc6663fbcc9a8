package utils

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const requestIDKey ctxKey = "requestID"

// CreateCtxWithRqID returns a context carrying a request id, generating one if missing.
func CreateCtxWithRqID(ctx context.Context) context.Context {
	if _, ok := ctx.Value(requestIDKey).(string); ok {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey, uuid.NewString())
}

func CtxWithRqID(ctx context.Context, rqID string) context.Context {
	return context.WithValue(ctx, requestIDKey, rqID)
}

func GetRequestIDFromCtx(ctx context.Context) string {
	rqID, ok := ctx.Value(requestIDKey).(string)
	if !ok {
		return ""
	}
	return rqID
}
