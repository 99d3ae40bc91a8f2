package main

import (
    "context"
    "errors"
    "flag"
    "fmt"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"

    "go.uber.org/zap"

    "clustergate.space/cg2-docs-web/internal/config"
    "clustergate.space/cg2-docs-web/internal/metrics"
    "clustergate.space/cg2-docs-web/internal/observability"
)

func main() {
    if err := run(os.Args[1:]); err != nil {
        fmt.Fprintf(os.Stderr, "cg2-docs-web: %v\n", err)
        os.Exit(1)
    }
}

func run(args []string) error {
    fs := flag.NewFlagSet("web", flag.ContinueOnError)
    addr := fs.String("addr", "", "HTTP listen address (overrides CG2_DOCS_ADDR / PORT)")
    siteFile := fs.String("site", "", "site metadata file (.yaml, .yml or .toml)")
    if err := fs.Parse(args); err != nil {
        return err
    }

    var opts []config.Option
    if *siteFile != "" {
        opts = append(opts, config.WithSiteFile(*siteFile))
    }
    cfg, err := config.Load(opts...)
    if err != nil {
        return fmt.Errorf("load config: %w", err)
    }
    if *addr != "" {
        cfg.Server.Addr = *addr
    }

    logger, err := observability.NewLogger(cfg.LogLevel)
    if err != nil {
        return fmt.Errorf("init logger: %w", err)
    }
    defer func() { _ = logger.Sync() }()

    handler, err := newRouter(cfg, logger, metrics.New())
    if err != nil {
        return fmt.Errorf("build router: %w", err)
    }

    srv := &http.Server{
        Addr:              cfg.Server.Addr,
        Handler:           handler,
        ReadHeaderTimeout: 10 * time.Second,
        ReadTimeout:       cfg.Server.ReadTimeout,
        WriteTimeout:      cfg.Server.WriteTimeout,
        IdleTimeout:       cfg.Server.IdleTimeout,
    }

    ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
    defer stop()

    errCh := make(chan error, 1)
    go func() {
        if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
            errCh <- err
        }
        close(errCh)
    }()

    logger.Info("web listening",
        zap.String("addr", cfg.Server.Addr),
        zap.String("base_url", cfg.Site.BaseURL),
        zap.String("site_file", cfg.SiteFile),
        zap.String("env", cfg.Environment),
        zap.Bool("dev", cfg.Dev),
    )

    select {
    case err, ok := <-errCh:
        if ok {
            return fmt.Errorf("listen: %w", err)
        }
        return nil
    case <-ctx.Done():
    }

    logger.Info("shutting down", zap.Duration("timeout", cfg.Server.ShutdownTimeout))
    shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
    defer cancel()
    if err := srv.Shutdown(shutdownCtx); err != nil {
        return fmt.Errorf("graceful shutdown failed: %w", err)
    }
    return nil
}
