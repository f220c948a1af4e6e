package main

import (
	"os"

	"github.com/sandevgo/wikirag/internal/config"
	"github.com/sandevgo/wikirag/internal/pagecache"
	"github.com/sandevgo/wikirag/internal/render"
	"github.com/sandevgo/wikirag/internal/wiki"
	"github.com/sandevgo/wikirag/pkg/log"
	"github.com/spf13/cobra"
)

var loadHTML bool

var loadCmd = &cobra.Command{
	Use:   "load <title>",
	Short: "Load a Wikipedia page through the local cache",
	Long:  `Loads the documents for a page title, fetching from Wikipedia on the first call and from the local JSON cache afterwards.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		cfg := config.NewAppConfig(ctx)
		cache := pagecache.New(cfg.GetCachePath(), wiki.NewClient(cfg))

		docs, err := cache.Load(ctx, args[0])
		if err != nil {
			return err
		}
		log.FromCtx(ctx).Info().Int("docs", len(docs)).Msg("page loaded")

		return newDisplayer(loadHTML).Display(render.ToMarkdown(render.FormatDocs(docs)))
	},
}

func init() {
	loadCmd.Flags().BoolVar(&loadHTML, "html", false, "render output as sanitized HTML")
	rootCmd.AddCommand(loadCmd)
}

func newDisplayer(html bool) render.Displayer {
	if html {
		return render.NewHTMLRenderer(os.Stdout)
	}
	return render.NewMarkdownWriter(os.Stdout)
}
