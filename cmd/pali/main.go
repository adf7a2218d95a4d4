package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/MrSnakeDoc/pali/internal/app"
)

func main() {
	// Optional .env for local runs; real environment variables win.
	_ = godotenv.Load()

	a, err := app.New()
	if err != nil {
		log.Fatalf("❌ pali failed to initialize: %v", err)
	}
	if err := a.Run(); err != nil {
		log.Fatalf("❌ pali failed to start: %v", err)
	}
}
