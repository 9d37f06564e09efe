package main

import (
	"context"
	"fmt"
	"os"

	"github.com/devkan/FirstAidVox/config"
	"github.com/devkan/FirstAidVox/pkg/log"
	pkgQdrant "github.com/devkan/FirstAidVox/pkg/qdrant"
	"github.com/devkan/FirstAidVox/pkg/voyage"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: go run scripts/ingest-documents/main.go <path/to/config.yaml> <documents dir>")
		fmt.Println("Example: go run scripts/ingest-documents/main.go config/config.yaml ./knowledge")
		os.Exit(1)
	}
	configPath, docsDir := os.Args[1], os.Args[2]

	// Load config
	os.Setenv("CONFIG_PATH", configPath)
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize Logger
	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "development",
		ColorEnabled: true,
	})

	ctx := context.Background()

	// Initialize clients
	qdrantClient := pkgQdrant.NewClient(cfg.Qdrant.URL)
	if cfg.Qdrant.APIKey != "" {
		qdrantClient = qdrantClient.WithAPIKey(cfg.Qdrant.APIKey)
	}
	embeddingClient, err := voyage.New(cfg.Voyage.APIKey)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize Voyage API: %v", err)
	}

	vectorSize := cfg.Qdrant.VectorSize
	if vectorSize <= 0 {
		vectorSize = voyage.DefaultDims
	}
	if err := qdrantClient.EnsureCollection(ctx, pkgQdrant.CreateCollectionRequest{
		Name:    cfg.Qdrant.CollectionName,
		Vectors: pkgQdrant.VectorConfig{Size: vectorSize, Distance: pkgQdrant.DistanceCosine},
	}); err != nil {
		logger.Fatalf(ctx, "Failed to ensure collection %s: %v", cfg.Qdrant.CollectionName, err)
	}

	chunks, err := loadChunks(docsDir)
	if err != nil {
		logger.Fatalf(ctx, "Failed to read documents: %v", err)
	}
	logger.Infof(ctx, "Found %d chunks to ingest into %s", len(chunks), cfg.Qdrant.CollectionName)

	ing := &ingester{
		embedder:       embeddingClient,
		store:          qdrantClient,
		collectionName: cfg.Qdrant.CollectionName,
		l:              logger,
	}
	count, err := ing.ingest(ctx, chunks)
	if err != nil {
		logger.Errorf(ctx, "Ingest stopped early: %v", err)
	}

	logger.Infof(ctx, "Ingest complete! %d/%d chunks stored.", count, len(chunks))
}
