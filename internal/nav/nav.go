package nav

import (
    "strings"

    "clustergate.space/cg2-docs-web/internal/baseurl"
)

// Item represents a top-level navbar entry.
type Item struct {
    Path     string // site-relative, e.g. "/intro/cg2"
    LabelKey string // i18n key, e.g. "nav.docs"
    Label    string // literal label; wins over LabelKey when set
}

// RenderedItem is a view model for the layout navbar.
type RenderedItem struct {
    Href     string
    LabelKey string
    Label    string
    Active   bool
}

// Main is the default navbar definition.
var Main = []Item{
    {Path: "/intro/cg2", LabelKey: "nav.docs"},
    {Path: "/specs/docker-imgs", LabelKey: "nav.specs"},
    {Path: "/examples/intro", LabelKey: "nav.examples"},
}

// Build renders navbar items with hrefs resolved against the base URL and
// active state given the current request path.
func Build(currentPath string, items []Item, resolve baseurl.Func) []RenderedItem {
    if currentPath == "" {
        currentPath = "/"
    }
    if items == nil {
        items = Main
    }
    out := make([]RenderedItem, 0, len(items))
    for _, it := range items {
        href, section := it.Path, sectionOf(it.Path)
        if resolve != nil {
            href, section = resolve(href), resolve(section)
        }
        out = append(out, RenderedItem{
            Href:     href,
            LabelKey: it.LabelKey,
            Label:    it.Label,
            Active:   isActive(strings.TrimRight(section, "/"), currentPath),
        })
    }
    return out
}

// sectionOf trims the leaf segment so "/intro/cg2" highlights for every
// page under "/intro".
func sectionOf(href string) string {
    href = strings.TrimRight(href, "/")
    if i := strings.LastIndex(href, "/"); i > 0 {
        return href[:i]
    }
    return href
}

func isActive(itemPath, currentPath string) bool {
    if itemPath == "" || itemPath == "/" {
        return false
    }
    // match exact or prefix boundary: "/intro" or "/intro/..."
    if currentPath == itemPath {
        return true
    }
    return strings.HasPrefix(currentPath, itemPath+"/")
}
