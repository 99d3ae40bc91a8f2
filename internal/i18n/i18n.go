package i18n

import (
    "embed"
    "encoding/json"
    "fmt"
    "io/fs"
    "sort"
    "strings"

    "golang.org/x/text/language"
)

//go:embed locales/*.json
var embedded embed.FS

// Locales exposes the bundled locale files.
func Locales() fs.FS {
    sub, err := fs.Sub(embedded, "locales")
    if err != nil {
        panic(err)
    }
    return sub
}

type Bundle struct {
    dict      map[string]map[string]string
    fallback  string
    supported map[string]struct{}
    tags      []language.Tag
    matcher   language.Matcher
}

// Load reads <lang>.json for each supported language from fsys. Only the
// fallback locale is required to exist.
func Load(fsys fs.FS, fallback string, supported []string) (*Bundle, error) {
    b := &Bundle{
        dict:      map[string]map[string]string{},
        fallback:  fallback,
        supported: map[string]struct{}{},
    }
    if len(supported) == 0 {
        supported = []string{"en", "ja"}
    }
    // fallback first so the matcher defaults to it
    ordered := append([]string{fallback}, supported...)
    for _, l := range ordered {
        if _, seen := b.supported[l]; seen {
            continue
        }
        raw, err := fs.ReadFile(fsys, l+".json")
        if err != nil {
            // allow missing file for non-default locales
            if l == fallback {
                return nil, fmt.Errorf("load locale %s: %w", l, err)
            }
            continue
        }
        var m map[string]string
        if err := json.Unmarshal(raw, &m); err != nil {
            return nil, fmt.Errorf("unmarshal %s: %w", l, err)
        }
        tag, err := language.Parse(l)
        if err != nil {
            return nil, fmt.Errorf("parse locale %s: %w", l, err)
        }
        b.supported[l] = struct{}{}
        b.dict[l] = m
        b.tags = append(b.tags, tag)
    }
    b.matcher = language.NewMatcher(b.tags)
    return b, nil
}

func (b *Bundle) Supported() []string {
    out := make([]string, 0, len(b.supported))
    for k := range b.supported {
        out = append(out, k)
    }
    sort.Strings(out)
    return out
}

// Fallback returns the configured fallback language.
func (b *Bundle) Fallback() string { return b.fallback }

// IsSupported reports whether lang has a loaded dictionary.
func (b *Bundle) IsSupported(lang string) bool {
    _, ok := b.supported[strings.ToLower(lang)]
    return ok
}

// T returns translation for key in lang, falling back to default and finally key.
func (b *Bundle) T(lang, key string) string {
    if lang != "" {
        if m, ok := b.dict[lang]; ok {
            if v, ok := m[key]; ok {
                return v
            }
        }
    }
    if m, ok := b.dict[b.fallback]; ok {
        if v, ok := m[key]; ok {
            return v
        }
    }
    return key
}

// Translator binds T to one language for use inside views.
func (b *Bundle) Translator(lang string) func(key string) string {
    return func(key string) string { return b.T(lang, key) }
}

// Resolve chooses best language from an Accept-Language header.
func (b *Bundle) Resolve(acceptLang string) string {
    prefs, _, err := language.ParseAcceptLanguage(acceptLang)
    if err != nil || len(prefs) == 0 {
        return b.fallback
    }
    _, idx, conf := b.matcher.Match(prefs...)
    if conf == language.No || idx < 0 || idx >= len(b.tags) {
        return b.fallback
    }
    base, _ := b.tags[idx].Base()
    return base.String()
}
