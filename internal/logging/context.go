package logging

import (
	"context"
	"log/slog"
	"strings"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldProject is the standardized key for the active project name.
	FieldProject = "project"
	// FieldSessionID is the standardized key for the per-invocation session identifier.
	FieldSessionID = "session_id"
	// FieldPath is the standardized key for scene file paths.
	FieldPath = "path"
	// FieldDecisionType is the standardized key for decision logging.
	FieldDecisionType = "decision_type"
)

type contextKey int

const (
	projectKey contextKey = iota
	sessionKey
)

// WithProject returns a context carrying the active project name.
func WithProject(ctx context.Context, project string) context.Context {
	project = strings.TrimSpace(project)
	if project == "" {
		return ctx
	}
	return context.WithValue(ctx, projectKey, project)
}

// WithSessionID returns a context carrying the invocation session identifier.
func WithSessionID(ctx context.Context, id string) context.Context {
	id = strings.TrimSpace(id)
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, sessionKey, id)
}

// ProjectFromContext returns the project name stored by WithProject.
func ProjectFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	project, ok := ctx.Value(projectKey).(string)
	return project, ok
}

// SessionIDFromContext returns the identifier stored by WithSessionID.
func SessionIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(sessionKey).(string)
	return id, ok
}

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	fields := make([]slog.Attr, 0, 2)
	if project, ok := ProjectFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldProject, project))
	}
	if id, ok := SessionIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldSessionID, id))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(Args(fields...)...)
}
