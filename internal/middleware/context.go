package middleware

import (
	"context"
)

// context keys are unexported to avoid collisions
type ctxKey string

const (
    ctxKeyRequestID ctxKey = "req_id"
    ctxKeyLocale    ctxKey = "locale"
    ctxKeyLocaleFB  ctxKey = "locale_fallback"
)

// WithRequestID stores request id in context
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, id)
}

// RequestID gets request id from context
func RequestID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ctxKeyRequestID).(string)
	return v, ok
}

// WithLocale stores the resolved chrome language
func WithLocale(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, ctxKeyLocale, lang)
}

// LocaleFromContext returns the language chosen by Locale, if any
func LocaleFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ctxKeyLocale).(string)
	return v, ok && v != ""
}

func withFallback(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, ctxKeyLocaleFB, lang)
}
