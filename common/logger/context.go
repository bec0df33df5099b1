package logger

import "context"

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields are attached to every log record emitted with a context that carries them.
// Handlers and services enrich the context once and later log calls pick the fields up.
type LogFields struct {
	UserID      *int64 // authenticated caller
	IssueID     *int64
	CommentID   *int64
	DashboardID *int64
	Route       *string // gin route template, e.g. "/api/comments/:id"
	Component   string  // e.g. "comment"
}

// WithLogFields merges fields into the context. Non-nil values in fields win over existing ones.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	merged := mergeFields(GetLogFields(ctx), fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

// GetLogFields returns the fields stored on ctx, or the zero value.
func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

func mergeFields(existing, incoming LogFields) LogFields {
	result := existing

	if incoming.UserID != nil {
		result.UserID = incoming.UserID
	}
	if incoming.IssueID != nil {
		result.IssueID = incoming.IssueID
	}
	if incoming.CommentID != nil {
		result.CommentID = incoming.CommentID
	}
	if incoming.DashboardID != nil {
		result.DashboardID = incoming.DashboardID
	}
	if incoming.Route != nil {
		result.Route = incoming.Route
	}
	if incoming.Component != "" {
		result.Component = incoming.Component
	}

	return result
}

// Ptr returns a pointer to v, for inline LogFields literals.
func Ptr[T any](v T) *T {
	return &v
}

// Truncate shortens s to maxLen bytes, appending "..." when cut.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
