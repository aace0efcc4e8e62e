package handlers

import "context"

// contextKey is the type for request context keys
type contextKey string

const (
	// UserIDKey is the context key holding the authenticated user id
	UserIDKey contextKey = "user_id"
	// UsernameKey is the context key holding the authenticated username
	UsernameKey contextKey = "username"
)

// GetUserID extracts the authenticated user id from the request context
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok
}

// GetUsername extracts the authenticated username from the request context
func GetUsername(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameKey).(string)
	return username, ok
}
