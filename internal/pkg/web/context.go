package web

import (
	"context"
	"fmt"
)

type ctxKey int

const payloadCtxKey ctxKey = iota

// NewContextWithPayload stores a decoded request body for the next handler.
//
//nolint:ireturn //This function needs to return a context.
func NewContextWithPayload(baseCtx context.Context, payload any) context.Context {
	return context.WithValue(baseCtx, payloadCtxKey, payload)
}

// PayloadFromContext returns the request body stored by NewContextWithPayload.
//
// nolint: ireturn //This is a generic function.
func PayloadFromContext[T any](ctx context.Context) (T, error) {
	val := ctx.Value(payloadCtxKey)
	payload, ok := val.(T)
	if !ok {
		var t T
		return t, fmt.Errorf("payload: %v is not a %T", val, t)
	}
	return payload, nil
}
