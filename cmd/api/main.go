// Command api runs the conlang dictionary HTTP server.
//
// Configuration is read from config.yaml and environment variables;
// see internal/config.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/CodaCrew-Code-Labs/conlang-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
