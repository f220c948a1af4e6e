package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/wikirag/pkg/log"
)

type AppConfig struct {
	DataPath string `env:"WIKIRAG_DATA_PATH" envDefault:".wikirag"`

	// Wikipedia loader settings
	Language    string        `env:"WIKIRAG_LANGUAGE" envDefault:"en"`
	MaxDocs     int           `env:"WIKIRAG_MAX_DOCS" envDefault:"3"`
	HTTPTimeout time.Duration `env:"WIKIRAG_HTTP_TIMEOUT" envDefault:"15s"`

	// Session history settings
	HistoryLimit int `env:"WIKIRAG_HISTORY_LIMIT" envDefault:"50"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func (c AppConfig) GetCachePath() string {
	return filepath.Join(c.DataPath, "wikipedia_cache.json")
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.DataPath, "wikirag.db")
}
