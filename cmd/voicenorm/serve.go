package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/hazyhaar/voicenorm/pkg/api"
	"github.com/hazyhaar/voicenorm/pkg/chassis"
	"github.com/hazyhaar/voicenorm/pkg/corpus"
	"github.com/hazyhaar/voicenorm/pkg/importer"
	"github.com/hazyhaar/voicenorm/pkg/lexicon"
	"github.com/hazyhaar/voicenorm/pkg/voicenorm"
)

func cmdServe(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	load := configFlags(fs)
	fs.Parse(args)

	cfg, logger := load()

	reg, norm := loadNormalizer(cfg, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svc := api.Services{Normalizer: norm, Registry: reg, Logger: logger}

	if cfg.CorpusDB != "" {
		store, err := corpus.Open(cfg.CorpusDB)
		if err != nil {
			fatal(logger, "open corpus", err)
		}
		defer store.Close()
		if err := store.Seed(corpus.Defaults()); err != nil {
			fatal(logger, "seed corpus", err)
		}
		svc.Corpus = store
		go corpus.NewChecker(store, norm, logger, cfg.CheckInterval).Start(ctx)
		logger.Info("corpus checker started", "db", cfg.CorpusDB, "interval", cfg.CheckInterval)
	}

	if cfg.SourcesDB != "" {
		sdb, err := importer.OpenSourceDB(cfg.SourcesDB)
		if err != nil {
			fatal(logger, "open sources", err)
		}
		defer sdb.Close()
		go importer.NewChecker(sdb, logger, cfg.CheckInterval).Start(ctx)
		logger.Info("source checker started", "db", cfg.SourcesDB)
	}

	router := api.NewRouter(svc)

	mcpSrv := server.NewMCPServer("voicenorm", version, server.WithToolCapabilities(false))
	api.RegisterMCPTools(mcpSrv, svc)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// SIGHUP: hot reload lexicon packs.
	sighup := make(chan os.Signal, 1)
	signal.Notify(sighup, syscall.SIGHUP)
	go func() {
		for range sighup {
			logger.Info("SIGHUP received, reloading lexicon")
			if err := reg.Reload(); err != nil {
				logger.Error("reload failed", "error", err)
			} else {
				logger.Info("lexicon reloaded", "packs", reg.PackCount(), "entries", reg.TotalEntries())
			}
		}
	}()

	go func() {
		logger.Info("voicenorm listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fatal(logger, "server error", err)
		}
	}()

	var chs *chassis.Server
	if cfg.Chassis.Enabled {
		var err error
		chs, err = chassis.New(chassis.Config{
			Addr:      cfg.Chassis.Addr,
			CertFile:  cfg.Chassis.CertFile,
			KeyFile:   cfg.Chassis.KeyFile,
			Handler:   router,
			MCPServer: mcpSrv,
			Logger:    logger,
		})
		if err != nil {
			fatal(logger, "chassis", err)
		}
		go func() {
			if err := chs.Start(ctx); err != nil {
				logger.Error("chassis stopped", "error", err)
				stop()
			}
		}()
	}

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if chs != nil {
		if err := chs.Stop(shutdownCtx); err != nil {
			logger.Warn("chassis shutdown", "error", err)
		}
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("http shutdown", "error", err)
	}
}

// loadNormalizer loads the lexicon packs under cfg.LexiconDir. A missing
// directory leaves the built-in lexicon alone.
func loadNormalizer(cfg *config, logger *slog.Logger) (*lexicon.Registry, *voicenorm.Normalizer) {
	reg := lexicon.NewRegistry(cfg.LexiconDir, logger)
	if err := reg.Load(); err != nil {
		fatal(logger, "failed to load lexicon", err)
	}
	logger.Info("lexicon loaded", "packs", reg.PackCount(), "entries", reg.TotalEntries())

	norm := voicenorm.New(reg, voicenorm.Options{
		SkipStandalone: cfg.SkipStandalone,
		Region:         cfg.Region,
		Logger:         logger,
	})
	return reg, norm
}
