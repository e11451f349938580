// Command wordcloud counts word frequencies in files or stdin without a
// database. Limits and logging come from WORDCLOUD_* and LOG_* variables.
//
// Usage:
//
//	wordcloud [--top N] [--sort count|alpha] [--format text|json|yaml] [--per-file] [file...]
//	wordcloud tokens [file...]
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/wordcloud/internal/app"
	"github.com/heartmarshall/wordcloud/internal/app/cli"
	"github.com/heartmarshall/wordcloud/internal/config"
)

func main() {
	cfg, logCfg, err := config.LoadWordCloud()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(logCfg)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	root := cli.NewRootCommand(cfg, logger, os.Stdin)
	root.Version = app.BuildVersion()

	if err := root.ExecuteContext(ctx); err != nil {
		cancel()
		os.Exit(1)
	}
}
