package seo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatTitle(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Clustergate-2", FormatTitle("Clustergate-2", "Clustergate-2", "|"))
	require.Equal(t, "Clustergate-2", FormatTitle("  ", "Clustergate-2", "|"))
	require.Equal(t, "Quick Start | Clustergate-2", FormatTitle("Quick Start", "Clustergate-2", ""))
	require.Equal(t, "Quick Start · Clustergate-2", FormatTitle("Quick Start", "Clustergate-2", "·"))
	require.Equal(t, "Quick Start", FormatTitle("Quick Start", "", "|"))
	require.Equal(t, "", FormatTitle("", "", "|"))
}

func TestFormatTitleTrimsBothTitles(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Clustergate-2", FormatTitle("Clustergate-2", " Clustergate-2 ", "|"))
	require.Equal(t, "Quick Start | Clustergate-2", FormatTitle(" Quick Start ", " Clustergate-2\t", "|"))
	require.Equal(t, "Quick Start", FormatTitle("Quick Start", "   ", "|"))
}

func TestBuildHomeMeta(t *testing.T) {
	t.Parallel()

	m := Build(Site{
		Title:        "Clustergate-2",
		URL:          "https://docs.clustergate.space/",
		Organization: "Clustergate",
	}, Page{
		Title:       "Clustergate-2",
		Description: "Deploy in Space",
		Path:        "/docs/",
		Lang:        "en",
	})

	require.Equal(t, "Clustergate-2", m.Title)
	require.Equal(t, "Deploy in Space", m.Description)
	require.Equal(t, "https://docs.clustergate.space/docs/", m.Canonical)
	require.Equal(t, "website", m.OG.Type)
	require.Equal(t, "Clustergate-2", m.OG.SiteName)
	require.Len(t, m.JSONLD, 2)
	require.Empty(t, m.Alternates, "a single language has no alternates")

	site := m.JSONLD[0]
	require.Equal(t, "WebSite", site["@type"])
	require.Equal(t, "https://docs.clustergate.space/docs/", site["url"])

	org := m.JSONLD[1]
	require.Equal(t, "Organization", org["@type"])
	require.Equal(t, "https://docs.clustergate.space", org["url"])

	_, err := json.Marshal(m.JSONLD)
	require.NoError(t, err)
}

func TestBuildAlternatesPerLanguage(t *testing.T) {
	t.Parallel()

	m := Build(Site{URL: "https://docs.clustergate.space"}, Page{Path: "/docs/", Langs: []string{"en", "ja"}})
	require.Equal(t, []Alternate{
		{Lang: "en", Href: "https://docs.clustergate.space/docs/?hl=en"},
		{Lang: "ja", Href: "https://docs.clustergate.space/docs/?hl=ja"},
		{Lang: "x-default", Href: "https://docs.clustergate.space/docs/"},
	}, m.Alternates)

	m = Build(Site{}, Page{Path: "/", Langs: []string{"en", "ja"}})
	require.Equal(t, "/?hl=ja", m.Alternates[1].Href, "without a site URL alternates stay site-relative")
}

func TestBuildWithoutSiteURL(t *testing.T) {
	t.Parallel()

	m := Build(Site{}, Page{Path: "/"})
	require.Empty(t, m.Canonical)
	require.Empty(t, m.Title)
	require.Empty(t, m.JSONLD)
}
