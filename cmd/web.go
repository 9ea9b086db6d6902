/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/flamego/csrf"
	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"
	"github.com/urfave/cli/v3"

	"github.com/humaidq/glucorisk/config"
	"github.com/humaidq/glucorisk/metrics"
	"github.com/humaidq/glucorisk/routes"
	"github.com/humaidq/glucorisk/static"
	"github.com/humaidq/glucorisk/templates"
)

const shutdownTimeout = 10 * time.Second

var CmdStart = &cli.Command{
	Name:    "start",
	Aliases: []string{"run"},
	Usage:   "Start the web server",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "port",
			Value: "8080",
			Usage: "the web server port",
		},
		&cli.StringFlag{
			Name:    "config",
			Sources: cli.EnvVars("GLUCORISK_CONFIG"),
			Usage:   "path to a YAML settings file",
		},
		&cli.StringFlag{
			Name:    "csrf-secret",
			Sources: cli.EnvVars("CSRF_SECRET"),
			Usage:   "secret used to sign CSRF tokens (overrides csrf_secret in the config file)",
		},
		&cli.BoolFlag{
			Name:  "dev",
			Value: false,
			Usage: "enables development mode (for templates)",
		},
	},
	Action: start,
}

func start(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}

	if secret := cmd.String("csrf-secret"); secret != "" {
		cfg.CSRFSecret = secret
	}

	if cmd.Bool("dev") {
		flamego.SetEnv(flamego.EnvTypeDev)
	} else {
		flamego.SetEnv(flamego.EnvTypeProd)
	}

	if cfg.CSRFSecret == "" {
		appLogger.Warn("No CSRF secret configured, tokens will not survive a restart")
	}

	f, err := newServer(cfg, metrics.New())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%s", cmd.String("port")),
		Handler:           f,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		// The analysis delay is spent inside the handler.
		WriteTimeout: cfg.AnalysisDelay + 10*time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorLog:     requestStdLogger,
	}

	errCh := make(chan error, 1)

	go func() {
		appLogger.Info("Starting web server", "addr", srv.Addr, "site_title", cfg.SiteTitle)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return fmt.Errorf("web server stopped: %w", err)
	case <-ctx.Done():
	}

	appLogger.Info("Shutting down web server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down web server: %w", err)
	}

	return nil
}

// newServer builds the flamego instance with every route and middleware.
func newServer(cfg *config.Config, rec *metrics.Recorder) (*flamego.Flame, error) {
	fs, err := template.EmbedFS(templates.Templates, ".", []string{".html"})
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	f := flamego.New()
	f.Use(flamego.Recovery())
	f.Use(routes.RequestLogger)

	f.Map(cfg)
	f.Map(rec)

	f.Use(flamego.Static(flamego.StaticOptions{
		FileSystem: http.FS(static.Static),
	}))

	// Machine endpoints sit outside the session and CSRF stack.
	f.Get("/healthz", routes.Healthz)
	f.Get("/metrics", routes.Metrics)
	f.Group("/api", func() {
		f.Post("/assess", routes.APIAssess)
		f.Get("/levels", routes.APILevels)
	})

	f.Group("", func() {
		f.Get("/", routes.Home)
		f.Post("/assess", csrf.Validate, routes.Assess)
		f.Get("/result", routes.Result)
		f.Get("/report", routes.DownloadReport)

		f.Get("/about", routes.ContentPage("about"))
		f.Get("/resources", routes.ContentPage("resources"))
		f.Get("/contact", routes.ContentPage("contact"))
	},
		session.Sessioner(),
		csrf.Csrfer(csrf.Options{Secret: cfg.CSRFSecret}),
		template.Templater(template.Options{FileSystem: fs}),
		routes.NoCacheHeaders(),
		routes.CSRFInjector(),
		routes.SiteChrome(),
	)

	configureEmptyNotFoundHandler(f)

	return f, nil
}

func configureEmptyNotFoundHandler(f *flamego.Flame) {
	f.NotFound(func(c flamego.Context) {
		c.ResponseWriter().WriteHeader(http.StatusNotFound)
	})
}
