package views

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/require"

	"clustergate.space/cg2-docs-web/internal/nav"
	"clustergate.space/cg2-docs-web/internal/seo"
	"clustergate.space/cg2-docs-web/internal/testutil"
)

func TestLayoutRendersChildrenInsideMain(t *testing.T) {
	t.Parallel()

	ctx := templ.WithChildren(context.Background(), templ.Raw(`<p id="child">hello</p>`))
	var buf bytes.Buffer
	require.NoError(t, Layout(seo.Meta{Title: "Clustergate-2"}, Chrome{}).Render(ctx, &buf))

	doc := testutil.ParseHTML(t, buf.Bytes())
	require.Equal(t, "hello", doc.Find("main#main > p#child").Text())
	require.Equal(t, "Clustergate-2", doc.Find("head title").Text())
}

func TestLayoutRendersAnalyticsSnippets(t *testing.T) {
	t.Parallel()

	html := testutil.Render(t, Layout(seo.Meta{}, Chrome{
		Analytics: Analytics{GA4MeasurementID: "G-TEST123", GTMContainerID: "GTM-ABC1"},
	}))
	doc := testutil.ParseHTML(t, []byte(html))

	require.Equal(t, 1, doc.Find(`head script[src="https://www.googletagmanager.com/gtag/js?id=G-TEST123"]`).Length())
	require.Contains(t, html, `gtag("config","G-TEST123");`)
	require.Equal(t, 1, doc.Find(`head script[src="https://www.googletagmanager.com/gtm.js?id=GTM-ABC1"]`).Length())
	require.Contains(t, html, `<body><noscript><iframe src="https://www.googletagmanager.com/ns.html?id=GTM-ABC1"`)
}

func TestLayoutRendersOnlyConfiguredAnalytics(t *testing.T) {
	t.Parallel()

	html := testutil.Render(t, Layout(seo.Meta{}, Chrome{Analytics: Analytics{GTMContainerID: "GTM-ABC1"}}))
	require.NotContains(t, html, "gtag/js")
	require.Contains(t, html, "gtm.js?id=GTM-ABC1")
}

func TestLayoutMarksActiveNavItem(t *testing.T) {
	t.Parallel()

	html := testutil.Render(t, Layout(seo.Meta{}, Chrome{
		SiteTitle: "Clustergate-2",
		HomeHref:  "/docs/",
		Nav: []nav.RenderedItem{
			{Href: "/docs/intro/cg2", Label: "Docs", Active: true},
			{Href: "/docs/examples/intro", LabelKey: "nav.examples"},
		},
	}))
	doc := testutil.ParseHTML(t, []byte(html))

	links := doc.Find("nav.navbar ul.navbar-items li > a.navbar-link")
	require.Equal(t, 2, links.Length())

	active := links.Eq(0)
	require.True(t, active.HasClass("navbar-link-active"))
	require.Equal(t, "page", active.AttrOr("aria-current", ""))
	require.Equal(t, "Docs", active.Text())

	other := links.Eq(1)
	require.False(t, other.HasClass("navbar-link-active"))
	_, current := other.Attr("aria-current")
	require.False(t, current)
	require.Equal(t, "nav.examples", other.Text(), "nil translator echoes the key")
	require.Equal(t, "/docs/examples/intro", other.AttrOr("href", ""))
}

func TestLayoutRendersAlternatesAndStructuredData(t *testing.T) {
	t.Parallel()

	meta := seo.Meta{
		Alternates: []seo.Alternate{
			{Lang: "en", Href: "https://docs.clustergate.space/docs/?hl=en"},
			{Lang: "x-default", Href: "https://docs.clustergate.space/docs/"},
		},
		JSONLD: []map[string]any{seo.WebSite(`Clustergate</script><script>alert(1)`, "", "")},
	}
	html := testutil.Render(t, Layout(meta, Chrome{}))
	doc := testutil.ParseHTML(t, []byte(html))

	alts := doc.Find(`head link[rel="alternate"]`)
	require.Equal(t, 2, alts.Length())
	require.Equal(t, "en", alts.Eq(0).AttrOr("hreflang", ""))
	require.Equal(t, "https://docs.clustergate.space/docs/", alts.Eq(1).AttrOr("href", ""))

	scripts := doc.Find(`script[type="application/ld+json"]`)
	require.Equal(t, 1, scripts.Length(), "names cannot break out of the structured data script")
	var site map[string]any
	require.NoError(t, json.Unmarshal([]byte(scripts.Text()), &site))
	require.Equal(t, `Clustergate</script><script>alert(1)`, site["name"])
}

func TestLayoutSanitisesUnsafeLinks(t *testing.T) {
	t.Parallel()

	html := testutil.Render(t, Layout(seo.Meta{Canonical: "javascript:alert(1)"}, Chrome{
		HomeHref: "javascript:alert(2)",
		Nav:      []nav.RenderedItem{{Href: "javascript:alert(3)", Label: "x"}},
	}))
	require.NotContains(t, html, "javascript:")
}
