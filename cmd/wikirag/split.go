package main

import (
	"fmt"
	"os"

	"github.com/sandevgo/wikirag/internal/config"
	"github.com/sandevgo/wikirag/internal/pagecache"
	"github.com/sandevgo/wikirag/internal/splitter"
	"github.com/sandevgo/wikirag/internal/wiki"
	"github.com/sandevgo/wikirag/pkg/log"
	"github.com/spf13/cobra"
)

var splitCmd = &cobra.Command{
	Use:   "split <title>",
	Short: "Load a page and split it into chunks",
	Long:  `Loads a page through the cache and splits its documents into overlapping chunks, printing one chunk per block.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		cfg := config.NewAppConfig(ctx)
		splitCfg := config.NewSplitterConfig(ctx)

		cache := pagecache.New(cfg.GetCachePath(), wiki.NewClient(cfg))
		docs, err := cache.Load(ctx, args[0])
		if err != nil {
			return err
		}

		opts := []splitter.Option{}
		if splitCfg.TokenLength {
			opts = append(opts, splitter.WithLength(splitter.TokenLength))
		}
		if len(splitCfg.Separators) > 0 {
			opts = append(opts, splitter.WithSeparators(splitCfg.Separators))
		}
		chunks := splitter.New(splitCfg.ChunkSize, splitCfg.ChunkOverlap, opts...).SplitDocuments(docs)

		log.FromCtx(ctx).Info().
			Int("docs", len(docs)).
			Int("chunks", len(chunks)).
			Msg("split complete")

		for i, chunk := range chunks {
			fmt.Fprintf(os.Stdout, "--- chunk %d (%s) ---\n%s\n\n", i, chunk.Metadata["title"], chunk.PageContent)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(splitCmd)
}
