package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadWithDefaults(t *testing.T) {
	cfg, err := Load(WithEnvMap(map[string]string{}), WithoutSystemEnv(), WithEnvFile(""), WithSiteFile(filepath.Join("testdata", "site.toml")))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Addr != ":8080" {
		t.Errorf("expected default addr :8080, got %s", cfg.Server.Addr)
	}
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Errorf("unexpected read timeout: %s", cfg.Server.ReadTimeout)
	}
	if cfg.Environment != "local" {
		t.Errorf("expected default environment local, got %s", cfg.Environment)
	}
	if cfg.Dev {
		t.Errorf("dev mode must default to false")
	}
	if cfg.Site.Title != "Clustergate-2" || cfg.Site.Tagline != "Deploy in Space" {
		t.Errorf("unexpected site metadata: %+v", cfg.Site)
	}
	if cfg.Site.BaseURL != "/" {
		t.Errorf("expected base url /, got %s", cfg.Site.BaseURL)
	}
	if cfg.Site.TitleDelimiter != "|" {
		t.Errorf("expected default title delimiter, got %q", cfg.Site.TitleDelimiter)
	}
	if cfg.I18n.DefaultLocale != "en" {
		t.Errorf("expected default locale en, got %s", cfg.I18n.DefaultLocale)
	}
	if cfg.Site.Footer.Copyright != "Copyright © Clustergate." {
		t.Errorf("unexpected footer: %q", cfg.Site.Footer.Copyright)
	}
}

func TestLoadYAMLSiteFileFromEnv(t *testing.T) {
	env := map[string]string{
		"CG2_DOCS_SITE_FILE": filepath.Join("testdata", "site.yaml"),
	}
	cfg, err := Load(WithEnvMap(env), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Site.BaseURL != "/docs/" {
		t.Errorf("expected normalised base url /docs/, got %s", cfg.Site.BaseURL)
	}
	if cfg.Site.URL != "https://docs.clustergate.space" {
		t.Errorf("unexpected site url %s", cfg.Site.URL)
	}
	if len(cfg.Site.Navbar) != 2 || cfg.Site.Navbar[1].To != "/examples/intro" {
		t.Errorf("unexpected navbar: %+v", cfg.Site.Navbar)
	}
	if cfg.SiteFile != env["CG2_DOCS_SITE_FILE"] {
		t.Errorf("expected SiteFile to record the file read, got %q", cfg.SiteFile)
	}
}

func TestLoadEnvOverridesSiteFile(t *testing.T) {
	env := map[string]string{
		"CG2_DOCS_SITE_TITLE":     "Clustergate-2 (staging)",
		"CG2_DOCS_BASE_URL":       "preview",
		"CG2_DOCS_ADDR":           "127.0.0.1:9000",
		"CG2_DOCS_READ_TIMEOUT":   "20s",
		"CG2_DOCS_DEV":            "yes",
		"CG2_DOCS_ENV":            "PROD",
		"CG2_DOCS_LOG_LEVEL":      "DEBUG",
		"CG2_DOCS_DEFAULT_LOCALE": "JA",
	}
	cfg, err := Load(WithEnvMap(env), WithoutSystemEnv(), WithEnvFile(""), WithSiteFile(filepath.Join("testdata", "site.yaml")))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Site.Title != "Clustergate-2 (staging)" {
		t.Errorf("env title must win over site file, got %q", cfg.Site.Title)
	}
	if cfg.Site.Tagline != "Deploy in Space" {
		t.Errorf("tagline must come from site file, got %q", cfg.Site.Tagline)
	}
	if cfg.Site.BaseURL != "/preview/" {
		t.Errorf("unexpected base url %s", cfg.Site.BaseURL)
	}
	if cfg.Server.Addr != "127.0.0.1:9000" {
		t.Errorf("unexpected addr %s", cfg.Server.Addr)
	}
	if cfg.Server.ReadTimeout != 20*time.Second {
		t.Errorf("unexpected read timeout %s", cfg.Server.ReadTimeout)
	}
	if !cfg.Dev || !cfg.IsProduction() {
		t.Errorf("expected dev=true and production env, got dev=%v env=%s", cfg.Dev, cfg.Environment)
	}
	if cfg.LogLevel != "debug" || cfg.I18n.DefaultLocale != "ja" {
		t.Errorf("expected lower-cased values, got level=%s locale=%s", cfg.LogLevel, cfg.I18n.DefaultLocale)
	}
}

func TestLoadKeepsEnvTitleVerbatim(t *testing.T) {
	env := map[string]string{
		"CG2_DOCS_SITE_TITLE":   "  Clustergate-2 ",
		"CG2_DOCS_SITE_TAGLINE": "\tDeploy in Space  ",
	}
	cfg, err := Load(WithEnvMap(env), WithoutSystemEnv(), WithEnvFile(""), WithSiteFile(filepath.Join("testdata", "site.yaml")))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Site.Title != "  Clustergate-2 " {
		t.Errorf("title must be kept verbatim, got %q", cfg.Site.Title)
	}
	if cfg.Site.Tagline != "\tDeploy in Space  " {
		t.Errorf("tagline must be kept verbatim, got %q", cfg.Site.Tagline)
	}

	env["CG2_DOCS_SITE_TITLE"] = "   "
	cfg, err = Load(WithEnvMap(env), WithoutSystemEnv(), WithEnvFile(""), WithSiteFile(filepath.Join("testdata", "site.yaml")))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Site.Title != "Clustergate-2" {
		t.Errorf("blank env title must fall back to the site file, got %q", cfg.Site.Title)
	}
}

func TestIsProduction(t *testing.T) {
	for env, want := range map[string]bool{"prod": true, "production": true, "staging": false, "local": false} {
		if got := (Config{Environment: env}).IsProduction(); got != want {
			t.Errorf("IsProduction(%q) = %v, want %v", env, got, want)
		}
	}
}

func TestLoadPortFallback(t *testing.T) {
	cfg, err := Load(WithEnvMap(map[string]string{"PORT": "3000"}), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Addr != ":3000" {
		t.Errorf("expected :3000, got %s", cfg.Server.Addr)
	}
}

func TestLoadMissingSiteRendersEmpty(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load(WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Site.Title != "" || cfg.Site.Tagline != "" {
		t.Errorf("expected empty site metadata, got %+v", cfg.Site)
	}
	if cfg.SiteFile != "" {
		t.Errorf("expected no site file, got %q", cfg.SiteFile)
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	content := "# local overrides\nCG2_DOCS_SITE_TAGLINE=\"Deploy in Space\"\nexport CG2_DOCS_GA_MEASUREMENT_ID=G-TEST\n"
	if err := os.WriteFile(envFile, []byte(content), 0o600); err != nil {
		t.Fatalf("write env: %v", err)
	}
	cfg, err := Load(WithoutSystemEnv(), WithEnvFile(envFile), WithSiteFile(filepath.Join("testdata", "site.toml")),
		WithEnvMap(map[string]string{"CG2_DOCS_GA_MEASUREMENT_ID": "G-MAP"}))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Site.Tagline != "Deploy in Space" {
		t.Errorf("expected tagline from .env, got %q", cfg.Site.Tagline)
	}
	if cfg.Analytics.GA4MeasurementID != "G-MAP" {
		t.Errorf("env map must win over .env, got %q", cfg.Analytics.GA4MeasurementID)
	}
}

func TestLoadInvalidValues(t *testing.T) {
	env := map[string]string{
		"CG2_DOCS_WRITE_TIMEOUT": "soon",
		"CG2_DOCS_DEV":           "maybe",
	}
	_, err := Load(WithEnvMap(env), WithoutSystemEnv(), WithEnvFile(""), WithSiteFile(filepath.Join("testdata", "site.toml")))
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	fields := vErr.Fields()
	if len(fields) != 2 || fields[0] != "CG2_DOCS_WRITE_TIMEOUT" || fields[1] != "CG2_DOCS_DEV" {
		t.Fatalf("unexpected invalid fields: %v", fields)
	}
}

func TestLoadExplicitSiteFileMustExist(t *testing.T) {
	_, err := Load(WithoutSystemEnv(), WithEnvFile(""), WithSiteFile(filepath.Join("testdata", "missing.yaml")))
	if err == nil {
		t.Fatalf("expected error for missing explicit site file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped not-exist error, got %v", err)
	}
}

func TestDecodeSiteRejectsUnknownFormat(t *testing.T) {
	if _, err := DecodeSite("site.json", []byte(`{}`)); err == nil {
		t.Fatalf("expected unsupported format error")
	}
}
