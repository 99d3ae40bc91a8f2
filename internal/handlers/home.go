package handlers

import (
    "bytes"
    "net/http"
    "time"

    "go.uber.org/zap"

    "clustergate.space/cg2-docs-web/internal/baseurl"
    "clustergate.space/cg2-docs-web/internal/config"
    "clustergate.space/cg2-docs-web/internal/i18n"
    "clustergate.space/cg2-docs-web/internal/markup"
    "clustergate.space/cg2-docs-web/internal/metrics"
    "clustergate.space/cg2-docs-web/internal/middleware"
    "clustergate.space/cg2-docs-web/internal/nav"
    "clustergate.space/cg2-docs-web/internal/observability"
    "clustergate.space/cg2-docs-web/internal/seo"
    "clustergate.space/cg2-docs-web/internal/views"
)

const stylesheetPath = "/assets/css/site.css"

// Dependencies collects what the page handlers render from.
type Dependencies struct {
    Site      config.SiteConfig
    Analytics config.AnalyticsConfig
    Resolver  *baseurl.Resolver
    Bundle    *i18n.Bundle
    Markup    *markup.Renderer
    Metrics   *metrics.Metrics
    // Cards overrides the Jump In table; nil uses nav.JumpIn().
    Cards []nav.NavCard
}

// Handlers serves the site pages.
type Handlers struct {
    site       config.SiteConfig
    analytics  views.Analytics
    resolver   *baseurl.Resolver
    bundle     *i18n.Bundle
    metrics    *metrics.Metrics
    cards      []nav.NavCard
    navItems   []nav.Item
    footerHTML string
}

// New wires the handler set. The footer markdown is rendered once here.
func New(deps Dependencies) (*Handlers, error) {
    md := deps.Markup
    if md == nil {
        md = markup.New()
    }
    footer, err := md.RenderInline(deps.Site.Footer.Copyright)
    if err != nil {
        return nil, err
    }
    resolver := deps.Resolver
    if resolver == nil {
        resolver = baseurl.New(deps.Site.URL, deps.Site.BaseURL)
    }
    cards := deps.Cards
    if cards == nil {
        cards = nav.JumpIn()
    }
    return &Handlers{
        site:       deps.Site,
        analytics:  analyticsView(deps.Analytics),
        resolver:   resolver,
        bundle:     deps.Bundle,
        metrics:    deps.Metrics,
        cards:      cards,
        navItems:   navItems(deps.Site.Navbar),
        footerHTML: footer,
    }, nil
}

// Home renders the landing page.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
    lang := middleware.Lang(r)
    data := h.homeData(r.URL.Path, lang)

    start := time.Now()
    var buf bytes.Buffer
    if err := views.Home(data).Render(r.Context(), &buf); err != nil {
        observability.FromContext(r.Context()).Error("render home failed", zap.Error(err), zap.String("lang", lang))
        h.metrics.RenderFailed("home")
        if rid, ok := middleware.RequestID(r.Context()); ok {
            w.Header().Set("X-Request-Id", rid)
        }
        http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
        return
    }
    h.metrics.ObserveRender("home", time.Since(start))
    h.metrics.CardsRendered(len(h.cards))

    w.Header().Set("Content-Type", "text/html; charset=utf-8")
    w.WriteHeader(http.StatusOK)
    _, _ = buf.WriteTo(w)
}

func (h *Handlers) homeData(path, lang string) views.HomeData {
    resolve := h.resolver.Func()
    return views.HomeData{
        Meta: seo.Build(seo.Site{
            Title:          h.site.Title,
            URL:            h.resolver.SiteURL(),
            TitleDelimiter: h.site.TitleDelimiter,
            Organization:   h.site.Organization,
            Image:          h.resolver.Resolve(h.site.Image, baseurl.Absolute()),
            Favicon:        resolve(h.site.Favicon),
        }, seo.Page{
            Title:       h.site.Title,
            Description: h.site.Tagline,
            Path:        h.resolver.Base(),
            Lang:        lang,
            Langs:       h.langs(),
        }),
        Chrome:        h.chrome(path, lang),
        Title:         h.site.Title,
        Tagline:       h.site.Tagline,
        JumpInHeading: h.t(lang, "home.jumpIn"),
        Cards:         nav.Cards(h.cards, resolve),
    }
}

func (h *Handlers) chrome(path, lang string) views.Chrome {
    resolve := h.resolver.Func()
    c := views.Chrome{
        SiteTitle:      h.site.Title,
        HomeHref:       h.resolver.Base(),
        StylesheetHref: resolve(stylesheetPath),
        Nav:            nav.Build(path, h.navItems, resolve),
        FooterHTML:     h.footerHTML,
        Analytics:      h.analytics,
    }
    if h.bundle != nil {
        c.T = h.bundle.Translator(lang)
    }
    return c
}

// langs lists the chrome languages the page can be switched to.
func (h *Handlers) langs() []string {
    if h.bundle == nil {
        return nil
    }
    return h.bundle.Supported()
}

func (h *Handlers) t(lang, key string) string {
    if h.bundle == nil {
        return key
    }
    return h.bundle.T(lang, key)
}

// navItems maps configured navbar entries; nil keeps the default navbar.
func navItems(cfg []config.NavbarItem) []nav.Item {
    if len(cfg) == 0 {
        return nil
    }
    out := make([]nav.Item, 0, len(cfg))
    for _, it := range cfg {
        out = append(out, nav.Item{Path: it.To, Label: it.Label})
    }
    return out
}
