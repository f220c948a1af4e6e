package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sandevgo/wikirag/internal/config"
	"github.com/sandevgo/wikirag/internal/core"
	"github.com/sandevgo/wikirag/internal/storage/sqlite"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect or append to persistent session history",
}

var historyAddCmd = &cobra.Command{
	Use:   "add <session-id> <role> <content...>",
	Short: "Append a chat turn to a session",
	Args:  cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		cfg := config.NewAppConfig(ctx)
		db, err := sqlite.NewDB(ctx, cfg.GetDatabasePath())
		if err != nil {
			return err
		}
		defer db.Close()

		msg := core.Message{Role: args[1], Content: strings.Join(args[2:], " ")}
		return sqlite.NewHistory(db).AddMessage(ctx, args[0], msg)
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Print the recorded turns of a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		cfg := config.NewAppConfig(ctx)
		db, err := sqlite.NewDB(ctx, cfg.GetDatabasePath())
		if err != nil {
			return err
		}
		defer db.Close()

		msgs, err := sqlite.NewHistory(db).GetMessages(ctx, args[0], cfg.HistoryLimit)
		if err != nil {
			return err
		}
		for _, msg := range msgs {
			fmt.Fprintf(os.Stdout, "%s: %s\n", msg.Role, msg.Content)
		}
		return nil
	},
}

func init() {
	historyCmd.AddCommand(historyAddCmd)
	historyCmd.AddCommand(historyShowCmd)
	rootCmd.AddCommand(historyCmd)
}
