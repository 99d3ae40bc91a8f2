// Package baseurl prefixes site-relative paths with the deployment's root path.
package baseurl

import (
	"regexp"
	"strings"
)

// Func resolves a site-relative path to a link usable in rendered markup.
type Func func(path string) string

// Resolver resolves paths against a fixed site origin and base path.
type Resolver struct {
	siteURL string
	base    string
}

// Option tweaks a single resolution.
type Option func(*options)

type options struct {
	absolute     bool
	forcePrepend bool
}

// Absolute prefixes the result with the site origin.
func Absolute() Option {
	return func(o *options) { o.absolute = true }
}

// ForcePrepend always prepends the base path, even when the path already carries it.
func ForcePrepend() Option {
	return func(o *options) { o.forcePrepend = true }
}

var protocolPattern = regexp.MustCompile(`^(?:\w*:|//)`)

// New builds a Resolver. siteURL is the absolute origin ("https://docs.example.com"),
// base the path prefix the site is mounted under ("/docs/").
func New(siteURL, base string) *Resolver {
	return &Resolver{
		siteURL: strings.TrimRight(strings.TrimSpace(siteURL), "/"),
		base:    Normalize(base),
	}
}

// Normalize returns base with exactly one leading and one trailing slash.
// Empty input yields "/".
func Normalize(base string) string {
	base = strings.TrimSpace(base)
	base = strings.Trim(base, "/")
	for strings.Contains(base, "//") {
		base = strings.ReplaceAll(base, "//", "/")
	}
	if base == "" {
		return "/"
	}
	return "/" + base + "/"
}

// Base returns the normalised base path.
func (r *Resolver) Base() string {
	if r == nil {
		return "/"
	}
	return r.base
}

// SiteURL returns the configured origin without trailing slash.
func (r *Resolver) SiteURL() string {
	if r == nil {
		return ""
	}
	return r.siteURL
}

// Resolve maps a site-relative path onto the base path. Fragments and URLs
// that already carry a scheme are returned untouched.
func (r *Resolver) Resolve(path string, opts ...Option) string {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if path == "" || strings.HasPrefix(path, "#") || protocolPattern.MatchString(path) {
		return path
	}
	base := r.Base()
	if o.forcePrepend {
		return r.withOrigin(base+strings.TrimPrefix(path, "/"), o.absolute)
	}
	if path == strings.TrimSuffix(base, "/") {
		return r.withOrigin(base, o.absolute)
	}
	resolved := path
	if !strings.HasPrefix(path, base) {
		resolved = base + strings.TrimPrefix(path, "/")
	}
	return r.withOrigin(resolved, o.absolute)
}

// Func returns Resolve bound as a plain function for rendering units.
func (r *Resolver) Func(opts ...Option) Func {
	return func(path string) string {
		return r.Resolve(path, opts...)
	}
}

func (r *Resolver) withOrigin(path string, absolute bool) string {
	if !absolute || r == nil || r.siteURL == "" {
		return path
	}
	return r.siteURL + path
}
