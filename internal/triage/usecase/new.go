package usecase

import (
	"time"

	"github.com/devkan/FirstAidVox/internal/triage"
	"github.com/devkan/FirstAidVox/internal/triage/repository"
	"github.com/devkan/FirstAidVox/pkg/llmprovider"
	pkgLog "github.com/devkan/FirstAidVox/pkg/log"
)

// Config tunes the orchestrator. Zero values use the defaults.
type Config struct {
	GenerationTimeout time.Duration
	RetrievalTimeout  time.Duration
	MaxResults        int
}

type implUseCase struct {
	l         pkgLog.Logger
	llm       llmprovider.Generator
	knowledge repository.KnowledgeRepository
	cfg       Config
}

var _ triage.UseCase = (*implUseCase)(nil)

// New creates a new triage UseCase instance. knowledge may be nil to run without retrieval.
func New(
	l pkgLog.Logger,
	llm llmprovider.Generator,
	knowledge repository.KnowledgeRepository,
	cfg Config,
) triage.UseCase {
	if cfg.GenerationTimeout <= 0 {
		cfg.GenerationTimeout = DefaultGenerationTimeout
	}
	if cfg.RetrievalTimeout <= 0 {
		cfg.RetrievalTimeout = DefaultRetrievalTimeout
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = DefaultMaxResults
	}
	return &implUseCase{
		l:         l,
		llm:       llm,
		knowledge: knowledge,
		cfg:       cfg,
	}
}
