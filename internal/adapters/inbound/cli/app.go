package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dealscout/dealscout/internal/adapters/outbound/compstore"
	"github.com/dealscout/dealscout/internal/adapters/outbound/config"
	"github.com/dealscout/dealscout/internal/adapters/outbound/extractor"
	"github.com/dealscout/dealscout/internal/adapters/outbound/logger"
	"github.com/dealscout/dealscout/internal/domain"
)

// fetchInterval spaces consecutive requests when several listings are fetched.
const fetchInterval = 500 * time.Millisecond

// app holds the adapters commands are wired with.
type app struct {
	env    *config.Env
	log    *logger.Logger
	loader domain.ConfigLoader
	store  domain.CompStore
}

func newApp(cmd *cobra.Command) (*app, error) {
	dir, err := projectDir(cmd)
	if err != nil {
		return nil, err
	}
	env, err := config.ReadEnv(dir)
	if err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	return &app{
		env:    env,
		log:    logger.NewWithWriter(cmd.ErrOrStderr(), env.Environment, env.LogLevel),
		loader: config.WithEnv(config.New(), env),
		store:  compstore.New(),
	}, nil
}

func (a *app) fetcher() *extractor.Fetcher {
	return extractor.NewFetcher(a.env.FetchTimeout, extractor.WithRateLimit(fetchInterval))
}
