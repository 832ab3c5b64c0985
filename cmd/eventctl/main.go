package main

import (
	"log"

	"eventflow-client/internal/app"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("[MAIN] No .env file found, relying on system env vars")
	}

	a, err := app.New()
	if err != nil {
		log.Fatalf("failed to start client: %v", err)
	}
	if err := a.Run(); err != nil {
		log.Fatalf("client exited with error: %v", err)
	}
}
