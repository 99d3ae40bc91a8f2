package middleware

import (
	"net/http"
	"strings"
)

// VaryLocale marks responses as varying on Accept-Language and the hl cookie.
func VaryLocale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		addVary(w.Header(), "Accept-Language")
		addVary(w.Header(), "Cookie")
		next.ServeHTTP(w, r)
	})
}

func addVary(h http.Header, value string) {
	for _, existing := range h.Values("Vary") {
		for _, v := range strings.Split(existing, ",") {
			if strings.EqualFold(strings.TrimSpace(v), value) {
				return
			}
		}
	}
	h.Add("Vary", value)
}
