package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"clustergate.space/cg2-docs-web/internal/baseurl"
)

const (
	envPrefix             = "CG2_DOCS_"
	defaultEnvFile        = ".env"
	defaultAddr           = ":8080"
	defaultEnvironment    = "local"
	defaultLogLevel       = "info"
	defaultReadTimeout    = 15 * time.Second
	defaultWriteTimeout   = 15 * time.Second
	defaultIdleTimeout    = 60 * time.Second
	defaultShutdown       = 10 * time.Second
	defaultTitleDelimiter = "|"
	defaultLocale         = "en"
)

var defaultSiteFiles = []string{"site.yaml", "site.yml", "site.toml"}

// Config captures runtime configuration organised by concern.
type Config struct {
	Server    ServerConfig
	Site      SiteConfig
	Analytics AnalyticsConfig
	I18n      I18nConfig

	Environment string
	Dev         bool
	LogLevel    string
	// SiteFile is the site file that was read, empty when none was found.
	SiteFile string
}

// ServerConfig configures HTTP server parameters.
type ServerConfig struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// SiteConfig is the read-only site metadata every page renders from.
type SiteConfig struct {
	Title          string       `yaml:"title" toml:"title"`
	Tagline        string       `yaml:"tagline" toml:"tagline"`
	URL            string       `yaml:"url" toml:"url"`
	BaseURL        string       `yaml:"baseUrl" toml:"baseUrl"`
	TitleDelimiter string       `yaml:"titleDelimiter" toml:"titleDelimiter"`
	Favicon        string       `yaml:"favicon" toml:"favicon"`
	Image          string       `yaml:"image" toml:"image"`
	Organization   string       `yaml:"organization" toml:"organization"`
	Navbar         []NavbarItem `yaml:"navbar" toml:"navbar"`
	Footer         FooterConfig `yaml:"footer" toml:"footer"`
}

// NavbarItem overrides one entry of the default navbar.
type NavbarItem struct {
	Label string `yaml:"label" toml:"label"`
	To    string `yaml:"to" toml:"to"`
}

// FooterConfig holds footer content. Copyright is markdown.
type FooterConfig struct {
	Copyright string `yaml:"copyright" toml:"copyright"`
}

// AnalyticsConfig holds client instrumentation identifiers surfaced to the layout.
type AnalyticsConfig struct {
	GA4MeasurementID string
	GTMContainerID   string
}

// I18nConfig selects the locale used when a request expresses no preference.
type I18nConfig struct {
	DefaultLocale string
}

// ValidationError is returned when configuration values cannot be parsed.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Option customises Load behaviour.
type Option func(*loaderOptions)

type loaderOptions struct {
	envFile      string
	envMap       map[string]string
	useSystemEnv bool
	siteFile     string
}

// WithEnvFile overrides the .env file path used for local overrides. An empty path disables it.
func WithEnvFile(path string) Option {
	return func(o *loaderOptions) {
		o.envFile = path
	}
}

// WithEnvMap injects an explicit key/value map for environment lookups. Values in the map
// take precedence over system environment variables.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) {
		o.envMap = values
	}
}

// WithoutSystemEnv disables reading from the process environment.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) {
		o.useSystemEnv = false
	}
}

// WithSiteFile reads site metadata from path. Unlike the default lookup, a missing file is an error.
func WithSiteFile(path string) Option {
	return func(o *loaderOptions) {
		o.siteFile = path
	}
}

// Load assembles configuration from defaults, the site file, .env overrides
// and environment variables, in increasing order of precedence.
func Load(opts ...Option) (Config, error) {
	options := loaderOptions{
		envFile:      defaultEnvFile,
		useSystemEnv: true,
	}
	for _, opt := range opts {
		opt(&options)
	}

	dotEnvValues, err := loadDotEnv(options.envFile)
	if err != nil {
		return Config{}, err
	}

	lookup := func(key string) (string, bool) {
		if options.envMap != nil {
			if value, ok := options.envMap[key]; ok {
				return value, true
			}
		}
		if options.useSystemEnv {
			if value, ok := os.LookupEnv(key); ok {
				return value, true
			}
		}
		if value, ok := dotEnvValues[key]; ok {
			return value, true
		}
		return "", false
	}

	siteFile := options.siteFile
	explicit := siteFile != ""
	if !explicit {
		if v, ok := lookup(envPrefix + "SITE_FILE"); ok && strings.TrimSpace(v) != "" {
			siteFile, explicit = strings.TrimSpace(v), true
		}
	}
	site, siteFile, err := loadSite(siteFile, explicit)
	if err != nil {
		return Config{}, err
	}

	var invalid []string
	p := parser{lookup: lookup, invalid: &invalid}

	cfg := Config{
		Server: ServerConfig{
			Addr:            resolveAddr(lookup),
			ReadTimeout:     p.duration("READ_TIMEOUT", defaultReadTimeout),
			WriteTimeout:    p.duration("WRITE_TIMEOUT", defaultWriteTimeout),
			IdleTimeout:     p.duration("IDLE_TIMEOUT", defaultIdleTimeout),
			ShutdownTimeout: p.duration("SHUTDOWN_TIMEOUT", defaultShutdown),
		},
		Site: site,
		Analytics: AnalyticsConfig{
			GA4MeasurementID: p.str("GA_MEASUREMENT_ID", ""),
			GTMContainerID:   p.str("GTM_CONTAINER_ID", ""),
		},
		I18n: I18nConfig{
			DefaultLocale: strings.ToLower(p.str("DEFAULT_LOCALE", defaultLocale)),
		},
		Environment: strings.ToLower(p.str("ENV", defaultEnvironment)),
		Dev:         p.boolean("DEV", false),
		LogLevel:    strings.ToLower(p.str("LOG_LEVEL", defaultLogLevel)),
		SiteFile:    siteFile,
	}

	cfg.Site.Title = p.text("SITE_TITLE", cfg.Site.Title)
	cfg.Site.Tagline = p.text("SITE_TAGLINE", cfg.Site.Tagline)
	cfg.Site.URL = p.str("SITE_URL", cfg.Site.URL)
	cfg.Site.BaseURL = baseurl.Normalize(p.str("BASE_URL", cfg.Site.BaseURL))
	if strings.TrimSpace(cfg.Site.TitleDelimiter) == "" {
		cfg.Site.TitleDelimiter = defaultTitleDelimiter
	}

	if len(invalid) > 0 {
		return Config{}, &ValidationError{fields: invalid}
	}
	return cfg, nil
}

// IsProduction reports whether the deployment environment is production.
func (c Config) IsProduction() bool {
	return c.Environment == "prod" || c.Environment == "production"
}

// resolveAddr prefers CG2_DOCS_ADDR, then the platform's PORT, else :8080.
func resolveAddr(lookup func(string) (string, bool)) string {
	if v, ok := lookup(envPrefix + "ADDR"); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	if v, ok := lookup("PORT"); ok && strings.TrimSpace(v) != "" {
		return ":" + strings.TrimSpace(v)
	}
	return defaultAddr
}

func loadDotEnv(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	values, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: unable to read %s: %w", path, err)
	}
	return values, nil
}

func loadSite(path string, explicit bool) (SiteConfig, string, error) {
	if !explicit {
		for _, candidate := range defaultSiteFiles {
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
		if path == "" {
			return SiteConfig{}, "", nil
		}
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return SiteConfig{}, "", fmt.Errorf("config: read site file %s: %w", path, err)
	}
	site, err := DecodeSite(path, raw)
	if err != nil {
		return SiteConfig{}, "", err
	}
	return site, path, nil
}

// DecodeSite parses site metadata, choosing TOML or YAML by the file extension of name.
func DecodeSite(name string, raw []byte) (SiteConfig, error) {
	var site SiteConfig
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		if err := toml.Unmarshal(raw, &site); err != nil {
			return SiteConfig{}, fmt.Errorf("config: parse site file %s: %w", name, err)
		}
	case ".yaml", ".yml", "":
		if err := yaml.Unmarshal(raw, &site); err != nil {
			return SiteConfig{}, fmt.Errorf("config: parse site file %s: %w", name, err)
		}
	default:
		return SiteConfig{}, fmt.Errorf("config: unsupported site file format %q", filepath.Ext(name))
	}
	return site, nil
}

type parser struct {
	lookup  func(string) (string, bool)
	invalid *[]string
}

func (p parser) str(key, fallback string) string {
	if value, ok := p.lookup(envPrefix + key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

// text is str for display strings: a set, non-blank value is kept verbatim.
func (p parser) text(key, fallback string) string {
	if value, ok := p.lookup(envPrefix + key); ok && strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

func (p parser) duration(key string, fallback time.Duration) time.Duration {
	value, ok := p.lookup(envPrefix + key)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil || d <= 0 {
		*p.invalid = append(*p.invalid, envPrefix+key)
		return fallback
	}
	return d
}

func (p parser) boolean(key string, fallback bool) bool {
	value, ok := p.lookup(envPrefix + key)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	}
	*p.invalid = append(*p.invalid, envPrefix+key)
	return fallback
}
