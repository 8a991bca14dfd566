package main

import (
	"os"

	"github.com/joho/godotenv"

	"tastebite-backend/pkg/logger"
)

func main() {
	// Missing .env is fine in containerized deployments.
	_ = godotenv.Load()

	logger.Init(os.Getenv("APP_ENV"))

	if err := Serve(); err != nil {
		logger.Error("server exited with error", err)
		os.Exit(1)
	}
}
