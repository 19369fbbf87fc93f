package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"cinematch-backend/internal/models"
	"cinematch-backend/internal/recommender"
	"cinematch-backend/internal/repository"
)

// BuildService orquesta el rebuild completo del artefacto:
// raw_movies -> pipeline -> colecciones de Mongo. El proceso que está
// sirviendo no toca su artefacto en memoria; los rebuilds se ven recién
// al reiniciar el API.
type BuildService struct {
	cfg struct {
		MaxFeatures int
		Workers     int
	}
	artifacts *repository.ArtifactRepository

	mu      sync.Mutex
	running bool
}

func NewBuildService(artifacts *repository.ArtifactRepository, maxFeatures, workers int) *BuildService {
	s := &BuildService{artifacts: artifacts}
	s.cfg.MaxFeatures = maxFeatures
	s.cfg.Workers = workers
	return s
}

// BuildProgress es lo que streameamos por WS durante un rebuild.
type BuildProgress struct {
	Stage   string `json:"stage"` // load|normalize|soup|vectorize|similarity|save|done|error
	Detail  string `json:"detail,omitempty"`
	Rows    int    `json:"rows,omitempty"`
	Elapsed string `json:"elapsed,omitempty"`
}

// Rebuild corre el pipeline completo sobre raw_movies y persiste el
// artefacto nuevo. Solo un rebuild a la vez; el segundo pedido falla.
func (s *BuildService) Rebuild(ctx context.Context, progress func(BuildProgress)) (*models.ArtifactSummary, error) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil, fmt.Errorf("rebuild already in progress")
	}
	s.running = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	if progress == nil {
		progress = func(BuildProgress) {}
	}
	start := time.Now()

	progress(BuildProgress{Stage: "load"})
	rows, err := s.artifacts.LoadRawMovies(ctx)
	if err != nil {
		progress(BuildProgress{Stage: "error", Detail: err.Error()})
		return nil, err
	}
	if len(rows) == 0 {
		err := fmt.Errorf("raw_movies is empty, seed it with the builder first")
		progress(BuildProgress{Stage: "error", Detail: err.Error()})
		return nil, err
	}
	progress(BuildProgress{Stage: "load", Rows: len(rows), Elapsed: time.Since(start).String()})

	catalog, matrix, vocab := recommender.Build(rows, recommender.BuildOptions{
		MaxFeatures: s.cfg.MaxFeatures,
		Workers:     s.cfg.Workers,
		Progress: func(stage string) {
			log.Printf("[build] etapa %s (%s)", stage, time.Since(start))
			progress(BuildProgress{Stage: stage, Rows: len(rows), Elapsed: time.Since(start).String()})
		},
	})

	progress(BuildProgress{Stage: "save", Rows: catalog.Len(), Elapsed: time.Since(start).String()})
	if err := s.artifacts.Save(ctx, catalog, matrix, vocab, s.cfg.MaxFeatures); err != nil {
		progress(BuildProgress{Stage: "error", Detail: err.Error()})
		return nil, err
	}

	summary, err := s.artifacts.Summary(ctx)
	if err != nil {
		return nil, err
	}

	log.Printf("[build] rebuild OK: %d filas, vocab=%d, en %s",
		summary.CatalogRows, summary.VocabSize, time.Since(start))
	progress(BuildProgress{Stage: "done", Rows: summary.CatalogRows, Elapsed: time.Since(start).String()})

	return summary, nil
}

// Summary devuelve los contadores del artefacto persistido.
func (s *BuildService) Summary(ctx context.Context) (*models.ArtifactSummary, error) {
	return s.artifacts.Summary(ctx)
}
