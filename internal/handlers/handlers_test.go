package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"clustergate.space/cg2-docs-web/internal/config"
	"clustergate.space/cg2-docs-web/internal/i18n"
	"clustergate.space/cg2-docs-web/internal/metrics"
	"clustergate.space/cg2-docs-web/internal/middleware"
	"clustergate.space/cg2-docs-web/internal/nav"
	"clustergate.space/cg2-docs-web/internal/testutil"
)

func newHandlers(t *testing.T, site config.SiteConfig, cards []nav.NavCard) *Handlers {
	t.Helper()
	bundle, err := i18n.Load(i18n.Locales(), "en", []string{"en", "ja"})
	require.NoError(t, err)
	h, err := New(Dependencies{
		Site:      site,
		Analytics: config.AnalyticsConfig{GA4MeasurementID: "G-ABC123", GTMContainerID: "GTM-XYZ9"},
		Bundle:    bundle,
		Metrics:   metrics.New(),
		Cards:     cards,
	})
	require.NoError(t, err)
	return h
}

func serveHome(t *testing.T, h *Handlers, target string, header http.Header) (*httptest.ResponseRecorder, *goquery.Document) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	middleware.Locale(h.bundle, "/")(http.HandlerFunc(h.Home)).ServeHTTP(rec, req)
	return rec, testutil.ParseHTML(t, rec.Body.Bytes())
}

func TestHomeRendersSiteMetadataAndCards(t *testing.T) {
	site := config.SiteConfig{
		Title:   "Clustergate-2",
		Tagline: "Deploy in Space",
		URL:     "https://docs.clustergate.space",
		BaseURL: "/docs/",
		Footer:  config.FooterConfig{Copyright: "Copyright © [Clustergate](https://clustergate.space)"},
	}
	rec, doc := serveHome(t, newHandlers(t, site, nil), "/docs/", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	require.Equal(t, "Clustergate-2", doc.Find("h1.hero-title").Text())
	require.Equal(t, "Deploy in Space", doc.Find("p.hero-subtitle").Text())
	require.Equal(t, "Clustergate-2", doc.Find("title").Text())
	require.Equal(t, "Deploy in Space", doc.Find(`meta[name="description"]`).AttrOr("content", ""))
	require.Equal(t, "https://docs.clustergate.space/docs/", doc.Find(`link[rel="canonical"]`).AttrOr("href", ""))
	require.Equal(t, "/docs/assets/css/site.css", doc.Find(`link[rel="stylesheet"]`).AttrOr("href", ""))

	require.Equal(t, "Jump In", doc.Find("h2.jump-in-title").Text())
	var hrefs []string
	doc.Find("a.jump-in-card").Each(func(_ int, s *goquery.Selection) {
		hrefs = append(hrefs, s.AttrOr("href", ""))
	})
	require.Equal(t, []string{"/docs/intro/cg2", "/docs/specs/docker-imgs", "/docs/examples/intro"}, hrefs)

	link := doc.Find("footer a")
	require.Equal(t, "Clustergate", link.Text())
	require.Contains(t, link.AttrOr("rel", ""), "nofollow")
}

func TestHomeLocalisesChromeOnly(t *testing.T) {
	site := config.SiteConfig{Title: "Clustergate-2", Tagline: "Deploy in Space", BaseURL: "/"}
	rec, doc := serveHome(t, newHandlers(t, site, nil), "/?hl=ja", nil)

	require.Equal(t, "ja", rec.Header().Get("Content-Language"))
	require.Equal(t, "ja", doc.Find("html").AttrOr("lang", ""))
	require.Equal(t, "はじめる", doc.Find("h2.jump-in-title").Text())
	require.Equal(t, "Deploy in Space", doc.Find("p.hero-subtitle").Text())
	require.Equal(t, "Quick Start", doc.Find("a.jump-in-card h3").First().Text())
}

func TestHomeWithEmptySiteAndNoCards(t *testing.T) {
	rec, doc := serveHome(t, newHandlers(t, config.SiteConfig{}, []nav.NavCard{}), "/", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "", doc.Find("h1.hero-title").Text())
	require.Equal(t, "", doc.Find("p.hero-subtitle").Text())
	require.Zero(t, doc.Find("a.jump-in-card").Length())
	require.Zero(t, doc.Find("footer").Length())
}

func TestHomeUsesConfiguredNavbar(t *testing.T) {
	site := config.SiteConfig{
		BaseURL: "/docs/",
		Navbar:  []config.NavbarItem{{Label: "Guides", To: "/guides/start"}},
	}
	_, doc := serveHome(t, newHandlers(t, site, nil), "/docs/", nil)

	links := doc.Find("nav.navbar a.navbar-link")
	require.Equal(t, 1, links.Length())
	require.Equal(t, "Guides", links.Text())
	require.Equal(t, "/docs/guides/start", links.AttrOr("href", ""))
}

func TestAnalyticsView(t *testing.T) {
	require.Equal(t, "G-ABC123", analyticsView(config.AnalyticsConfig{GA4MeasurementID: " G-ABC123 "}).GA4MeasurementID)
	require.Empty(t, analyticsView(config.AnalyticsConfig{GA4MeasurementID: "UA-1"}).GA4MeasurementID)
	require.Empty(t, analyticsView(config.AnalyticsConfig{GA4MeasurementID: `G-1"><script>`}).GA4MeasurementID)

	require.Equal(t, "GTM-XYZ9", analyticsView(config.AnalyticsConfig{GTMContainerID: "GTM-XYZ9"}).GTMContainerID)
	require.Empty(t, analyticsView(config.AnalyticsConfig{GTMContainerID: "G-XYZ9"}).GTMContainerID)
	require.Empty(t, analyticsView(config.AnalyticsConfig{GTMContainerID: "GTM-1&l=x"}).GTMContainerID)
}

func TestHomeRendersAnalyticsAndAlternates(t *testing.T) {
	site := config.SiteConfig{Title: "Clustergate-2", URL: "https://docs.clustergate.space/", BaseURL: "/docs/"}
	_, doc := serveHome(t, newHandlers(t, site, nil), "/docs/", nil)

	require.Equal(t, 1, doc.Find(`script[src$="gtag/js?id=G-ABC123"]`).Length())
	require.Equal(t, 1, doc.Find(`script[src$="gtm.js?id=GTM-XYZ9"]`).Length())

	var langs, hrefs []string
	doc.Find(`link[rel="alternate"]`).Each(func(_ int, s *goquery.Selection) {
		langs = append(langs, s.AttrOr("hreflang", ""))
		hrefs = append(hrefs, s.AttrOr("href", ""))
	})
	require.Equal(t, []string{"en", "ja", "x-default"}, langs)
	require.Equal(t, []string{
		"https://docs.clustergate.space/docs/?hl=en",
		"https://docs.clustergate.space/docs/?hl=ja",
		"https://docs.clustergate.space/docs/",
	}, hrefs)
	require.Equal(t, "https://docs.clustergate.space/docs/", doc.Find(`meta[property="og:url"]`).AttrOr("content", ""))
}

func TestHomeRenderFailureReturns500WithRequestID(t *testing.T) {
	h := newHandlers(t, config.SiteConfig{Title: "Clustergate-2"}, nil)

	ctx, cancel := context.WithCancel(middleware.WithRequestID(context.Background(), "req-42"))
	cancel()
	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	h.Home(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "req-42", rec.Header().Get("X-Request-Id"))
	require.NotContains(t, rec.Body.String(), "<html")
}

func TestNotFoundAndHealthz(t *testing.T) {
	rec := httptest.NewRecorder()
	NotFound(rec, httptest.NewRequest(http.MethodGet, "/docs/missing", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	Healthz(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", rec.Body.String())
}
