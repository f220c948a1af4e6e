package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/wikirag/pkg/log"
)

type SplitterConfig struct {
	ChunkSize    int `env:"WIKIRAG_CHUNK_SIZE" envDefault:"1000"`
	ChunkOverlap int `env:"WIKIRAG_CHUNK_OVERLAP" envDefault:"200"`

	// TokenLength switches chunk measurement from characters to
	// cl100k_base tokens.
	TokenLength bool `env:"WIKIRAG_TOKEN_LENGTH" envDefault:"false"`

	// Separators override the default coarse-to-fine separator list,
	// e.g. "\n\n|\n| " for the default behavior.
	Separators []string `env:"WIKIRAG_SEPARATORS" envSeparator:"|"`
}

func NewSplitterConfig(ctx context.Context) *SplitterConfig {
	cfg := &SplitterConfig{}
	if err := env.Parse(cfg); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Splitter config")
	}
	return cfg
}
