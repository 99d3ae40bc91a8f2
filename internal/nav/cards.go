package nav

import (
    "iter"

    "clustergate.space/cg2-docs-web/internal/baseurl"
)

// SVG is trusted, inline vector markup embedded in source.
type SVG string

// NavCard describes one "Jump In" destination on the landing page.
type NavCard struct {
    Title       string
    Description string
    Link        string // site-relative, resolved against the base URL before use
    Icon        SVG
}

// RenderedCard is a NavCard with its link resolved for the current deployment.
type RenderedCard struct {
    Href        string
    Title       string
    Description string
    Icon        SVG
}

const (
    iconQuickStart SVG = `<svg width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">` +
        `<circle cx="12" cy="12" r="10"></circle>` +
        `<polygon points="10 8 16 12 10 16 10 8"></polygon>` +
        `</svg>`
    iconDockerImages SVG = `<svg width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round">` +
        `<rect x="3" y="4" width="18" height="4" rx="1"></rect>` +
        `<rect x="3" y="10" width="18" height="4" rx="1"></rect>` +
        `<rect x="3" y="16" width="18" height="4" rx="1"></rect>` +
        `</svg>`
    iconExamples SVG = `<svg width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">` +
        `<path d="M2 3h6a4 4 0 0 1 4 4v14a3 3 0 0 0-3-3H2z"></path>` +
        `<path d="M22 3h-6a4 4 0 0 0-4 4v14a3 3 0 0 1 3-3h7z"></path>` +
        `</svg>`
)

// jumpIn is the fixed card table. Order is the on-screen order.
var jumpIn = [...]NavCard{
    {
        Title:       "Quick Start",
        Description: "Get to know Clustergate-2 and how to deploy software in Space.",
        Link:        "/intro/cg2",
        Icon:        iconQuickStart,
    },
    {
        Title:       "Docker Images Onboard",
        Description: "Learn through practical examples and real-world scenarios",
        Link:        "/specs/docker-imgs",
        Icon:        iconDockerImages,
    },
    {
        Title:       "Examples",
        Description: "Browse code samples and implementation patterns to deploy in Space",
        Link:        "/examples/intro",
        Icon:        iconExamples,
    },
}

// JumpIn returns a copy of the landing page card table.
func JumpIn() []NavCard {
    out := make([]NavCard, len(jumpIn))
    copy(out, jumpIn[:])
    return out
}

// Cards yields one RenderedCard per entry of table, in order. The sequence
// can be ranged over any number of times; a nil resolve leaves links as-is.
func Cards(table []NavCard, resolve baseurl.Func) iter.Seq[RenderedCard] {
    return func(yield func(RenderedCard) bool) {
        for _, c := range table {
            href := c.Link
            if resolve != nil {
                href = resolve(c.Link)
            }
            if !yield(RenderedCard{
                Href:        href,
                Title:       c.Title,
                Description: c.Description,
                Icon:        c.Icon,
            }) {
                return
            }
        }
    }
}
