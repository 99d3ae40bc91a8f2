package seo

import (
    "net/url"
    "strings"
)

type OpenGraph struct {
    Title       string
    Description string
    Image       string
    Type        string
    URL         string
    SiteName    string
}

type Twitter struct {
    Card  string
    Image string
}

// Meta is the document head metadata for one page.
type Meta struct {
    Title       string // formatted document title
    Description string
    Canonical   string
    Favicon     string
    Lang        string
    OG          OpenGraph
    Twitter     Twitter
    Alternates  []Alternate
    JSONLD      []map[string]any
}

// Alternate is one hreflang link to the same page in another language.
type Alternate struct {
    Lang string
    Href string
}

// Site is the subset of site configuration the head needs.
type Site struct {
    Title          string
    URL            string
    TitleDelimiter string
    Organization   string
    Image          string // absolute or already resolved
    Favicon        string // already resolved
}

// Page describes what a page hands to the layout.
type Page struct {
    Title       string
    Description string
    Path        string // resolved request path, e.g. "/docs/"
    Lang        string
    // Langs lists every language the page is served in; more than one
    // produces hreflang alternates.
    Langs []string
}

// FormatTitle joins a page title with the site title the way the docs
// framework does: the site title alone when the page title is blank or equal
// to it, otherwise "page | site".
func FormatTitle(title, siteTitle, delimiter string) string {
    title = strings.TrimSpace(title)
    siteTitle = strings.TrimSpace(siteTitle)
    if title == "" || title == siteTitle {
        return siteTitle
    }
    if siteTitle == "" {
        return title
    }
    if strings.TrimSpace(delimiter) == "" {
        delimiter = "|"
    }
    return title + " " + delimiter + " " + siteTitle
}

// Build assembles head metadata for page on site.
func Build(site Site, page Page) Meta {
    title := FormatTitle(page.Title, site.Title, site.TitleDelimiter)
    canonical := ""
    if site.URL != "" {
        canonical = strings.TrimRight(site.URL, "/") + page.Path
    }
    m := Meta{
        Title:       title,
        Description: page.Description,
        Canonical:   canonical,
        Favicon:     site.Favicon,
        Lang:        page.Lang,
        OG: OpenGraph{
            Title:       title,
            Description: page.Description,
            Image:       site.Image,
            Type:        "website",
            URL:         canonical,
            SiteName:    site.Title,
        },
        Twitter: Twitter{
            Card:  "summary_large_image",
            Image: site.Image,
        },
    }
    if site.Title != "" {
        m.JSONLD = append(m.JSONLD, WebSite(site.Title, canonical, page.Description))
    }
    if site.Organization != "" {
        m.JSONLD = append(m.JSONLD, Organization(site.Organization, strings.TrimRight(site.URL, "/"), site.Image))
    }
    m.Alternates = alternates(canonical, page.Path, page.Langs)
    return m
}

// alternates links each language variant through the ?hl= switch. The
// unqualified URL is the x-default.
func alternates(canonical, path string, langs []string) []Alternate {
    if len(langs) < 2 {
        return nil
    }
    href := canonical
    if href == "" {
        href = path
    }
    out := make([]Alternate, 0, len(langs)+1)
    for _, l := range langs {
        out = append(out, Alternate{Lang: l, Href: href + "?hl=" + url.QueryEscape(l)})
    }
    return append(out, Alternate{Lang: "x-default", Href: href})
}
