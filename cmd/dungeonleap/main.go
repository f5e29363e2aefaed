// Package main is the entry point for dungeonleap.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/samdwyer/dungeonleap/internal/cmd"
)

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_DUNGEONLEAP_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	setupTelemetryEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cmd.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// setupTelemetryEnv maps the Honeycomb variables kept in .env onto the
// DUNGEONLEAP_TELEMETRY_* keys read by the config loader. Explicit
// DUNGEONLEAP_* values win.
func setupTelemetryEnv() {
	apiKey := os.Getenv("HONEYCOMB_DUNGEONLEAP_API_KEY")
	if apiKey == "" {
		return
	}

	setIfUnset("DUNGEONLEAP_TELEMETRY_API_KEY", apiKey)
	setIfUnset("DUNGEONLEAP_TELEMETRY_ENABLED", "true")
	if dataset := os.Getenv("HONEYCOMB_DUNGEONLEAP_DATASET"); dataset != "" {
		setIfUnset("DUNGEONLEAP_TELEMETRY_DATASET", dataset)
	}
}

func setIfUnset(key, value string) {
	if _, ok := os.LookupEnv(key); !ok {
		os.Setenv(key, value)
	}
}
