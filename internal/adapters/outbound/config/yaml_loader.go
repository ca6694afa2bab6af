package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dealscout/dealscout/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileName is the per-directory config file.
const FileName = ".dealscout.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .dealscout.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .dealscout.yaml from dir.
// Returns DefaultConfig if the file does not exist.
func (l *YAMLLoader) Load(dir string) (domain.EvaluatorConfig, error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.EvaluatorConfig{}, err
	}

	// Unmarshal over the defaults so omitted finance keys keep their values.
	cfg := domain.DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.EvaluatorConfig{}, fmt.Errorf("parsing %s: %w", FileName, err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.EvaluatorConfig{}, fmt.Errorf("invalid %s: %w", FileName, err)
	}

	if cfg.CompsDir != "" && !filepath.IsAbs(cfg.CompsDir) {
		cfg.CompsDir = filepath.Join(dir, cfg.CompsDir)
	}

	return cfg, nil
}
