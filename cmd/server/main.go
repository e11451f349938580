// Command server runs the wordcloud HTTP API.
//
// Flags:
//
//	--migrate  apply pending database migrations before serving
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/wordcloud/internal/app"
)

func main() {
	migrate := flag.Bool("migrate", false, "apply pending migrations before serving")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx, app.Options{Migrate: *migrate}); err != nil {
		log.Printf("server: %v", err)
		cancel()
		os.Exit(1)
	}
}
