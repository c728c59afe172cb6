package ports

import "context"

type sessionKey struct{}

// WithSessionToken returns a context whose backend calls are made on behalf
// of the session identified by token. An empty token leaves ctx unchanged.
func WithSessionToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, sessionKey{}, token)
}

// SessionToken returns the token stored by WithSessionToken, or "".
func SessionToken(ctx context.Context) string {
	tok, _ := ctx.Value(sessionKey{}).(string)
	return tok
}
