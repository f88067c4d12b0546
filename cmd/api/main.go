package main

import (
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/idea-to-deploy/forge-backend/config"
	"github.com/idea-to-deploy/forge-backend/internal/bootstrap"
	"github.com/idea-to-deploy/forge-backend/internal/generation/analyst"
	"github.com/idea-to-deploy/forge-backend/internal/generation/designer"
	"github.com/idea-to-deploy/forge-backend/internal/generation/llm"
	"github.com/idea-to-deploy/forge-backend/internal/janitor"
	"github.com/idea-to-deploy/forge-backend/internal/logger"
	"github.com/idea-to-deploy/forge-backend/internal/projects/repository"
	"github.com/idea-to-deploy/forge-backend/internal/projects/service"
)

const serviceName = "forge-backend"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", serviceName, err)
		os.Exit(1)
	}
}

// run holds the whole lifetime of the process so its defers (log flush,
// janitor stop) execute on every exit path.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log, err := logger.New(cfg.App.Environment)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer log.Sync()

	bootstrap.SetGinMode(cfg.App.Environment)

	store, err := repository.NewStore(cfg.Data.Dir)
	if err != nil {
		log.Error("opening data store", "dir", cfg.Data.Dir, "error", err)
		return err
	}

	var cache *llm.Cache
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		cache = llm.NewCache(rdb, cfg.Redis.CacheTTL, log)
		log.Info("completion cache enabled", "addr", cfg.Redis.Addr)
	}

	var client *llm.Client
	if cfg.LLM.APIKey != "" {
		client = llm.New(llm.Config{
			APIKey:      cfg.LLM.APIKey,
			BaseURL:     cfg.LLM.BaseURL,
			Model:       cfg.LLM.Model,
			Timeout:     cfg.LLM.Timeout,
			RequestsSec: cfg.LLM.RequestsSec,
		}, log, cache)
	} else {
		log.Info("no api key configured, using template generation only")
	}

	var strategy designer.Strategy = designer.Curated{}
	if cfg.Designer.Strategy == "prompt" {
		strategy = designer.Prompted{BaseURL: cfg.Designer.ImageServiceURL}
	}

	svc := service.NewProjectService(
		store,
		analyst.New(client, log),
		designer.New(strategy),
		log,
	)

	if cfg.Janitor.Enabled {
		j := janitor.New(store, log)
		if err := j.Start(cfg.Janitor.Schedule); err != nil {
			log.Error("starting janitor", "error", err)
			return err
		}
		defer j.Stop()
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Version:     cfg.App.Version,
		Environment: cfg.App.Environment,
		DataDir:     cfg.Data.Dir,
		Projects:    svc,
		Log:         log,
	})

	addr := ":" + cfg.Server.Port
	log.Info("server listening", "addr", addr, "env", cfg.App.Environment)
	if err := r.Run(addr); err != nil {
		log.Error("server stopped", "error", err)
		return err
	}
	return nil
}
