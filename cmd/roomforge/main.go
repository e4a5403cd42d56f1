// Package main is the entry point for roomforge.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/samdwyer/roomforge/internal/config"
	"github.com/samdwyer/roomforge/internal/game"
	"github.com/samdwyer/roomforge/internal/gamedata"
	"github.com/samdwyer/roomforge/internal/telemetry"
	"github.com/samdwyer/roomforge/internal/ui"
	"github.com/samdwyer/roomforge/internal/world"
)

func main() {
	textOutput := flag.Bool("text", false, "print the map as text instead of opening the viewer")
	flag.Parse()

	// Reads .env if present, then ROOMFORGE_* overrides.
	opts, err := config.FromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := opts.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	setupOTelEnv()

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Continuing without tracing")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	if *textOutput {
		if err := printMap(ctx, opts); err != nil {
			log.Fatalf("Generation failed: %v", err)
		}
		return
	}

	screen, err := ui.NewScreen()
	if err != nil {
		log.Fatalf("Failed to open screen: %v", err)
	}

	g, err := game.New(ctx, screen, opts)
	if err != nil {
		screen.Close()
		log.Fatalf("Failed to generate map: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		log.Fatalf("Viewer error: %v", err)
	}
}

// printMap generates a map and writes it to stdout.
func printMap(ctx context.Context, opts config.Options) error {
	palette, err := gamedata.LoadPalette()
	if err != nil {
		return err
	}
	d, err := world.Generate(ctx, opts, nil)
	if err != nil {
		return err
	}
	return ui.WriteText(os.Stdout, d.Final, palette)
}

// setupOTelEnv points the OTLP exporter at Honeycomb when an API key is set.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_ROOMFORGE_API_KEY")
	if apiKey == "" {
		return
	}
	dataset := os.Getenv("HONEYCOMB_ROOMFORGE_DATASET")
	if dataset == "" {
		dataset = "roomforge" // default dataset name
	}

	if os.Getenv(telemetry.EnvEndpoint) == "" {
		os.Setenv(telemetry.EnvEndpoint, "https://api.honeycomb.io")
	}
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
