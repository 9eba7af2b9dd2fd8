package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/docwolf/actionmap/internal/catalog"
	"github.com/docwolf/actionmap/internal/config"
	"github.com/docwolf/actionmap/internal/diag"
	"github.com/docwolf/actionmap/internal/export"
	"github.com/docwolf/actionmap/internal/fetch"
	"github.com/docwolf/actionmap/internal/logging"
	"github.com/docwolf/actionmap/internal/monitoring"
	"github.com/docwolf/actionmap/internal/servicemap"
)

func main() {
	servicesPath := flag.String("services", "", "Path to the services file with known action names (required)")
	actionsPath := flag.String("actions", "", "Path to write the generated action map JSON")
	errorsPath := flag.String("errors", "", "Path to write warnings and errors JSON")
	indent := flag.Bool("indent", false, "Pretty-print the JSON files")
	flag.Parse()

	if *servicesPath == "" {
		fmt.Fprintln(os.Stderr, "the -services flag is required")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger, *servicesPath, *actionsPath, *errorsPath, *indent); err != nil {
		logger.Fatal("run failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, logger *logging.Logger, servicesPath, actionsPath, errorsPath string, indent bool) error {
	authoritative, err := servicemap.LoadAuthoritative(servicesPath)
	if err != nil {
		return err
	}

	urlMap, err := servicemap.URLMap()
	if err != nil {
		return err
	}

	client := fetch.New(fetch.Config{
		BaseURL:      cfg.Fetch.BaseURL,
		TOCURL:       cfg.Fetch.TOCURL,
		Timeout:      cfg.Fetch.Timeout,
		RetryMax:     cfg.Fetch.RetryMax,
		RetryWaitMin: cfg.Fetch.RetryWaitMin,
		RetryWaitMax: cfg.Fetch.RetryWaitMax,
		RateLimit:    cfg.Fetch.RateLimit,
	})

	published, err := client.PublishedIndex(ctx)
	if err != nil {
		return fmt.Errorf("fetch published index: %w", err)
	}
	logger.Info("fetched published index", zap.Int("pages", len(published)))

	builder := catalog.New(client, urlMap, catalog.Config{
		Workers: cfg.Build.Workers,
		Log:     logger,
		Metrics: monitoring.NewDefault(),
	})

	cat, diags := builder.Build(ctx, authoritative, published)
	messages := diag.Messages(diags)

	if actionsPath != "" {
		if err := export.WriteJSON(actionsPath, cat, indent); err != nil {
			return err
		}
	}
	if errorsPath != "" {
		if err := export.WriteJSON(errorsPath, messages, indent); err != nil {
			return err
		}
	}

	if err := export.NewNotifier(cfg.Notify.WebhookURL).Send(ctx, messages); err != nil {
		logger.Warn("notification failed", zap.Error(err))
	}

	return nil
}
