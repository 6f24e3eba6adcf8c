package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"user-api-service/cmd/api/app"
)

func main() {
	a, err := app.New()
	if err != nil {
		log.Fatalf("startup failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := a.Run(ctx); err != nil {
		log.Fatalf("application exited with error: %v", err)
	}
}
