package logging

import "context"

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	pageKey      contextKey = "page"
)

// WithRequestID adds an API request ID to the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// WithPage adds the name of the page handling the current action.
func WithPage(ctx context.Context, page string) context.Context {
	return context.WithValue(ctx, pageKey, page)
}

// GetRequestID retrieves the request ID from the context.
// Returns empty string if not present.
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// GetPage retrieves the page name from the context.
// Returns empty string if not present.
func GetPage(ctx context.Context) string {
	if page, ok := ctx.Value(pageKey).(string); ok {
		return page
	}
	return ""
}
