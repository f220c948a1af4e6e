package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sandevgo/wikirag/internal/render"
	"github.com/spf13/cobra"
)

var (
	renderHTML     bool
	renderQuestion string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Format text from stdin for display",
	Long:  `Reads raw text from stdin and emits display-ready markdown: prose becomes blockquotes, bullet glyphs become list markers, code fences pass through. With --question the text is shown as an answer below a question header.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		input, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}

		d := newDisplayer(renderHTML)
		if renderQuestion != "" {
			return render.DisplayAnswer(d, renderQuestion, string(input))
		}
		return d.Display(render.ToMarkdown(string(input)))
	},
}

func init() {
	renderCmd.Flags().BoolVar(&renderHTML, "html", false, "render output as sanitized HTML")
	renderCmd.Flags().StringVarP(&renderQuestion, "question", "q", "", "show the input as the answer to this question")
	rootCmd.AddCommand(renderCmd)
}
