package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/teampulse/teampulse/internal/app"
	"github.com/teampulse/teampulse/internal/config"
)

func main() {
	// Local development convenience; a missing .env is not an error.
	_ = godotenv.Load()

	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}
