// Package bootstrap builds the domain use cases from configuration. Both the
// API server and the CLI wire through it.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/devkan/FirstAidVox/config"
	"github.com/devkan/FirstAidVox/internal/facility"
	googleplacesRepo "github.com/devkan/FirstAidVox/internal/facility/repository/googleplaces"
	facilityUC "github.com/devkan/FirstAidVox/internal/facility/usecase"
	"github.com/devkan/FirstAidVox/internal/triage"
	"github.com/devkan/FirstAidVox/internal/triage/repository"
	qdrantRepo "github.com/devkan/FirstAidVox/internal/triage/repository/qdrant"
	vertexsearchRepo "github.com/devkan/FirstAidVox/internal/triage/repository/vertexsearch"
	triageUC "github.com/devkan/FirstAidVox/internal/triage/usecase"
	"github.com/devkan/FirstAidVox/pkg/llmprovider"
	"github.com/devkan/FirstAidVox/pkg/log"
	"github.com/devkan/FirstAidVox/pkg/places"
	"github.com/devkan/FirstAidVox/pkg/qdrant"
	"github.com/devkan/FirstAidVox/pkg/vertexsearch"
	"github.com/devkan/FirstAidVox/pkg/voyage"
)

const (
	RetrievalVertex = "vertex"
	RetrievalQdrant = "qdrant"
	RetrievalNone   = "none"
)

// Generator builds the provider chain and returns it with the provider names in
// the order they are tried.
func Generator(ctx context.Context, cfg config.LLMConfig, l log.Logger) (llmprovider.Generator, []string, error) {
	providers, err := llmprovider.InitializeProviders(ctx, &cfg, l)
	if err != nil {
		return nil, nil, fmt.Errorf("llmprovider.InitializeProviders: %w", err)
	}

	names := make([]string, len(providers))
	for i, p := range providers {
		names[i] = p.Name()
		l.Infof(ctx, "LLM provider %d: %s (%s)", i+1, p.Name(), p.Model())
	}

	return llmprovider.NewManager(providers, &llmprovider.Config{FallbackEnabled: cfg.FallbackEnabled}, l), names, nil
}

// Knowledge builds the configured knowledge repository. A backend that cannot be
// initialized is logged and replaced by no retrieval, so the second return value
// names the backend actually in use.
func Knowledge(ctx context.Context, cfg *config.Config, l log.Logger) (repository.KnowledgeRepository, string) {
	switch cfg.Retrieval.Provider {
	case RetrievalVertex:
		client, err := vertexsearch.New(ctx, vertexsearch.Config{
			ProjectID:       cfg.VertexSearch.ProjectID,
			Location:        cfg.VertexSearch.Location,
			EngineID:        cfg.VertexSearch.EngineID,
			CredentialsPath: cfg.VertexSearch.CredentialsPath,
		})
		if err != nil {
			l.Warnf(ctx, "Vertex AI Search not available, continuing without retrieval: %v", err)
			return nil, RetrievalNone
		}
		return vertexsearchRepo.New(client, l), RetrievalVertex

	case RetrievalQdrant:
		if cfg.Qdrant.URL == "" {
			l.Warn(ctx, "Qdrant URL not configured, continuing without retrieval")
			return nil, RetrievalNone
		}
		embedder, err := voyage.New(cfg.Voyage.APIKey)
		if err != nil {
			l.Warnf(ctx, "Voyage embeddings not available, continuing without retrieval: %v", err)
			return nil, RetrievalNone
		}
		client := qdrant.NewClient(cfg.Qdrant.URL)
		if cfg.Qdrant.APIKey != "" {
			client = client.WithAPIKey(cfg.Qdrant.APIKey)
		}
		return qdrantRepo.New(client, embedder, cfg.Qdrant.CollectionName, cfg.Qdrant.MinScore, l), RetrievalQdrant

	default:
		return nil, RetrievalNone
	}
}

// Facilities builds the facility use case, or returns nil when no Places API key is set.
func Facilities(cfg config.PlacesConfig, l log.Logger) facility.UseCase {
	client, err := places.NewClient(cfg.APIKey)
	if err != nil {
		return nil
	}
	if cfg.BaseURL != "" {
		client = client.WithBaseURL(cfg.BaseURL)
	}
	if cfg.Timeout > 0 {
		client = client.WithTimeout(cfg.Timeout)
	}
	return facilityUC.New(l, googleplacesRepo.New(client, l))
}

// Triage builds the conversation orchestrator.
func Triage(cfg *config.Config, llm llmprovider.Generator, knowledge repository.KnowledgeRepository, l log.Logger) triage.UseCase {
	return triageUC.New(l, llm, knowledge, triageUC.Config{
		GenerationTimeout: cfg.LLM.GenerationTimeout,
		RetrievalTimeout:  cfg.Retrieval.Timeout,
		MaxResults:        cfg.Retrieval.MaxResults,
	})
}
