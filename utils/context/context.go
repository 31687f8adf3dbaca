package context

import (
	"context"

	"github.com/muhammadheryan/femnest/constant"
)

func GetSessionID(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.SessionIDKey)
	if v == nil {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, constant.SessionIDKey, sessionID)
}
