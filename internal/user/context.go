package user

import "context"

type ctxKey string

const contextUserKey ctxKey = "currentUser"

// ContextWithUser stores the resolved acting user for downstream handlers.
func ContextWithUser(ctx context.Context, u *User) context.Context {
	return context.WithValue(ctx, contextUserKey, u)
}

// FromContext returns the acting user placed by the auth middleware.
func FromContext(ctx context.Context) (*User, bool) {
	u, ok := ctx.Value(contextUserKey).(*User)
	return u, ok && u != nil
}
