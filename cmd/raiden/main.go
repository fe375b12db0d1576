package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/raiden/internal/cli"
	"github.com/alexanderramin/raiden/internal/config"
	"github.com/alexanderramin/raiden/internal/db"
	"github.com/alexanderramin/raiden/internal/intelligence"
	"github.com/alexanderramin/raiden/internal/llm"
	"github.com/alexanderramin/raiden/internal/logger"
	"github.com/alexanderramin/raiden/internal/repository"
	"github.com/alexanderramin/raiden/internal/service"
	"github.com/alexanderramin/raiden/internal/store"
	"github.com/alexanderramin/raiden/internal/template"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log, err := logger.New(cfg.Log.Mode, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer log.Sync()

	// Open the key-value backend
	kv, closer, err := openKV(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closer.Close()

	st := store.Open(ctx, kv, log)

	catalog, err := template.LoadCatalog(cfg.TemplatesDir)
	if err != nil {
		return fmt.Errorf("loading templates: %w", err)
	}
	registry := template.NewRegistry(catalog, st)

	app := &cli.App{
		Workbench: service.NewWorkbenchService(registry, st,
			service.WithObserver(service.NewLogUseCaseObserver(log)),
		),
		Log: log,
	}

	// Prompts and TUIs only when stdin is a terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Advisory model, only when enabled
	llmCfg := llm.ConfigFromSettings(llm.Settings{
		Enabled:    cfg.Advisory.Enabled,
		LogCalls:   cfg.Advisory.LogCalls,
		Endpoint:   cfg.Advisory.Endpoint,
		Model:      cfg.Advisory.Model,
		TimeoutMs:  cfg.Advisory.TimeoutMs,
		MaxRetries: cfg.Advisory.MaxRetries,
	})
	var client llm.LLMClient
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(log)
		}
		client = llm.NewOllamaClient(llmCfg, observer)
	}
	app.Advisory = intelligence.NewAdvisoryService(client)

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func openKV(ctx context.Context, cfg *config.Config, log *logger.Logger) (repository.KVRepo, io.Closer, error) {
	switch cfg.Store.Driver {
	case config.DriverMemory:
		return repository.NewMemoryKVRepo(), nopCloser{}, nil
	case config.DriverRedis:
		kv, err := repository.NewRedisKVRepo(ctx, cfg.Redis.Addr, cfg.Redis.Prefix)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to redis: %w", err)
		}
		return kv, kv, nil
	default:
		database, err := db.Open(cfg.Store.Driver, cfg.Store.DSN, log)
		if err != nil {
			return nil, nil, fmt.Errorf("opening database: %w", err)
		}
		return repository.NewSQLKVRepo(database), database, nil
	}
}
