package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"

	"github.com/dealscout/dealscout/internal/domain"
)

// DefaultFetchTimeout bounds a listing fetch when DEALSCOUT_FETCH_TIMEOUT is
// unset or not positive.
const DefaultFetchTimeout = 8 * time.Second

// Env holds process-level settings read from the environment and an
// optional .env file.
type Env struct {
	Environment   string        `env:"DEALSCOUT_ENV"            envDefault:"production"`
	LogLevel      string        `env:"DEALSCOUT_LOG_LEVEL"`
	ReferenceYear int           `env:"DEALSCOUT_REFERENCE_YEAR"`
	FetchTimeout  time.Duration `env:"DEALSCOUT_FETCH_TIMEOUT"  envDefault:"8s"`
}

// DotEnvFile is the optional environment file read from the project directory.
const DotEnvFile = ".env"

// ReadEnv loads dir/.env when present and parses the DEALSCOUT_* variables.
// Variables already set in the process win over the file.
func ReadEnv(dir string) (*Env, error) {
	_ = godotenv.Load(filepath.Join(dir, DotEnvFile))

	e := &Env{}
	if err := env.Parse(e); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if e.FetchTimeout <= 0 {
		e.FetchTimeout = DefaultFetchTimeout
	}
	return e, nil
}

// Apply overlays environment overrides on a file config. The environment
// reference year wins over the YAML one.
func (e *Env) Apply(cfg domain.EvaluatorConfig) (domain.EvaluatorConfig, error) {
	if e.ReferenceYear != 0 {
		cfg.ReferenceYear = e.ReferenceYear
		if err := cfg.Validate(); err != nil {
			return domain.EvaluatorConfig{}, fmt.Errorf("invalid DEALSCOUT_REFERENCE_YEAR: %w", err)
		}
	}
	return cfg, nil
}

// EnvLoader decorates a ConfigLoader with environment overrides.
type EnvLoader struct {
	next domain.ConfigLoader
	env  *Env
}

// WithEnv wraps next so every loaded config has e applied.
func WithEnv(next domain.ConfigLoader, e *Env) *EnvLoader {
	return &EnvLoader{next: next, env: e}
}

// Load implements domain.ConfigLoader.
func (l *EnvLoader) Load(dir string) (domain.EvaluatorConfig, error) {
	cfg, err := l.next.Load(dir)
	if err != nil {
		return domain.EvaluatorConfig{}, err
	}
	return l.env.Apply(cfg)
}
