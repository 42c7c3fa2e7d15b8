package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/maxviazov/pagewindow/internal/app"
)

func main() {
	path := "config.yaml"
	if p := os.Getenv("APP_CONFIG"); p != "" {
		path = p
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Serve(ctx, path); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}
