package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"eventflow-client/internal/config"
	"eventflow-client/internal/stub"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("[MAIN] No .env file found, relying on system env vars")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	srv, err := stub.NewServer(config.LoadStub(), logger)
	if err != nil {
		log.Fatalf("failed to build stub server: %v", err)
	}

	go func() {
		if err := srv.Start(); err != nil {
			log.Fatalf("stub server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("stub server stopped")
}
