// Package main provides a tool to seed the catalog directly, without going
// through the HTTP API.
//
// Usage:
//
//	DATA_PATH=~/jobeee/data go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/princeofgodman/figma-jobeee/internal/service"
	"github.com/princeofgodman/figma-jobeee/internal/store"
)

func main() {
	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		dataPath = os.ExpandEnv("$HOME/jobeee/data")
	}
	dbPath := filepath.Join(dataPath, "catalog")

	fmt.Printf("Opening catalog at: %s\n", dbPath)

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	s, err := store.New(dbPath, logger)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer s.Close()

	catalog := service.NewCatalogService(s, logger)

	seeded, err := catalog.Seed(context.Background())
	if err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}

	if seeded {
		fmt.Println("Catalog seeded successfully")
	} else {
		fmt.Println("Catalog already seeded, nothing to do")
	}
}
