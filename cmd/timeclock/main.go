package main

import (
	"fmt"
	"os"

	"timeclock/internal/cli"
	"timeclock/internal/config"
	"timeclock/internal/ratelimit"
	"timeclock/internal/services"
)

func main() {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	repo, err := config.CreateRepository(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating repository: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close()

	limiter, cleanup, err := buildLimiter(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating rate limiter: %v\n", err)
		os.Exit(1)
	}
	if cleanup != nil {
		defer cleanup()
	}

	container := &services.ServiceContainer{
		Entry:    services.NewEntryService(repo, limiter),
		Approval: services.NewApprovalService(repo),
		Report:   services.NewReportService(repo),
	}

	root := cli.NewRootCommand(container, repo, cfg)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildLimiter assembles the submission throttle from configuration: a
// buntdb-backed store when a path is configured, an in-process store
// otherwise, or nil when throttling is disabled.
func buildLimiter(cfg *config.Config) (*ratelimit.Limiter, func() error, error) {
	if !cfg.RateLimit.Enabled {
		return nil, nil, nil
	}

	if cfg.RateLimit.StorePath != "" {
		store, err := ratelimit.NewBuntStore(cfg.RateLimit.StorePath)
		if err != nil {
			return nil, nil, err
		}
		return ratelimit.NewWithPolicy(store, cfg.RateLimit.Window, cfg.RateLimit.MaxAttempts), store.Close, nil
	}

	store := ratelimit.NewMemoryStore()
	return ratelimit.NewWithPolicy(store, cfg.RateLimit.Window, cfg.RateLimit.MaxAttempts), nil, nil
}
