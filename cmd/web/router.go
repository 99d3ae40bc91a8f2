package main

import (
    "net/http"
    "strings"
    "time"

    "github.com/go-chi/chi/v5"
    "github.com/go-chi/chi/v5/middleware"
    "go.uber.org/zap"

    "clustergate.space/cg2-docs-web/internal/baseurl"
    "clustergate.space/cg2-docs-web/internal/config"
    handlersPkg "clustergate.space/cg2-docs-web/internal/handlers"
    "clustergate.space/cg2-docs-web/internal/i18n"
    "clustergate.space/cg2-docs-web/internal/metrics"
    mw "clustergate.space/cg2-docs-web/internal/middleware"
    "clustergate.space/cg2-docs-web/public"
)

const requestTimeout = 30 * time.Second

// newRouter wires the middleware stack and every route of the site.
func newRouter(cfg config.Config, logger *zap.Logger, m *metrics.Metrics) (http.Handler, error) {
    bundle, err := i18n.Load(i18n.Locales(), cfg.I18n.DefaultLocale, []string{"en", "ja"})
    if err != nil {
        return nil, err
    }
    resolver := baseurl.New(cfg.Site.URL, cfg.Site.BaseURL)
    h, err := handlersPkg.New(handlersPkg.Dependencies{
        Site:      cfg.Site,
        Analytics: cfg.Analytics,
        Resolver:  resolver,
        Bundle:    bundle,
        Metrics:   m,
    })
    if err != nil {
        return nil, err
    }
    static, err := public.StaticFS()
    if err != nil {
        return nil, err
    }

    r := chi.NewRouter()
    r.Use(middleware.RequestID)
    // RealIP trusts X-Forwarded-For; only deploy behind a proxy that sets it.
    r.Use(middleware.RealIP)
    r.Use(mw.Logger(logger))
    r.Use(middleware.Recoverer)
    r.Use(mw.Metrics(m))
    r.Use(middleware.Compress(5))
    r.Use(middleware.Timeout(requestTimeout))
    if !cfg.IsProduction() {
        r.Use(mw.NoIndex)
    }

    r.Get("/healthz", handlersPkg.Healthz)
    r.Handle("/metrics", m.Handler())

    base := resolver.Base()
    assetsPrefix := strings.TrimSuffix(base, "/") + "/assets"
    r.Handle(assetsPrefix+"/*", http.StripPrefix(assetsPrefix, mw.AssetsWithCache(static, cfg.Dev)))

    r.Group(func(r chi.Router) {
        r.Use(mw.Locale(bundle, base))
        r.Use(mw.VaryLocale)
        r.Get(base, h.Home)
    })
    if base != "/" {
        // "/docs" -> "/docs/"
        r.Get(strings.TrimSuffix(base, "/"), func(w http.ResponseWriter, req *http.Request) {
            target := base
            if req.URL.RawQuery != "" {
                target += "?" + req.URL.RawQuery
            }
            http.Redirect(w, req, target, http.StatusMovedPermanently)
        })
    }
    r.NotFound(handlersPkg.NotFound)
    return r, nil
}
