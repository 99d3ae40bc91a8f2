package middleware

import (
    "net/http"
    "strings"

    "clustergate.space/cg2-docs-web/internal/i18n"
)

const localeCookie = "hl"

// Locale resolves the chrome language from ?hl=, the hl cookie, then
// Accept-Language. An explicit ?hl= is remembered in the cookie. Unsupported
// values are ignored.
func Locale(bundle *i18n.Bundle, cookiePath string) func(http.Handler) http.Handler {
    if cookiePath == "" {
        cookiePath = "/"
    }
    return func(next http.Handler) http.Handler {
        return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
            lang := ""
            if q := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("hl"))); q != "" && bundle.IsSupported(q) {
                lang = q
                http.SetCookie(w, &http.Cookie{
                    Name:     localeCookie,
                    Value:    q,
                    Path:     cookiePath,
                    MaxAge:   365 * 24 * 60 * 60,
                    HttpOnly: true,
                    SameSite: http.SameSiteLaxMode,
                })
            }
            if lang == "" {
                if c, err := r.Cookie(localeCookie); err == nil && bundle.IsSupported(c.Value) {
                    lang = strings.ToLower(c.Value)
                }
            }
            if lang == "" {
                lang = bundle.Resolve(r.Header.Get("Accept-Language"))
            }
            w.Header().Set("Content-Language", lang)
            ctx := WithLocale(r.Context(), lang)
            ctx = withFallback(ctx, bundle.Fallback())
            next.ServeHTTP(w, r.WithContext(ctx))
        })
    }
}

// Lang returns the language chosen by Locale, the bundle fallback, or "en".
func Lang(r *http.Request) string {
    if lang, ok := LocaleFromContext(r.Context()); ok {
        return lang
    }
    if v := r.Context().Value(ctxKeyLocaleFB); v != nil {
        if fb, ok := v.(string); ok && fb != "" {
            return fb
        }
    }
    return "en"
}
