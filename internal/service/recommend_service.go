package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"cinematch-backend/internal/cache"
	"cinematch-backend/internal/models"
	"cinematch-backend/internal/recommender"
	"cinematch-backend/internal/repository"
)

// RecommendService envuelve al motor puro con el cache Redis y el historial
// en Mongo. El par (catálogo, matriz) se carga una vez al arranque y es
// inmutable durante la vida del proceso: las lecturas concurrentes son
// seguras sin locks.
type RecommendService struct {
	catalog *recommender.Catalog
	matrix  *recommender.Matrix
	recRepo *repository.RecommendationRepository
}

func NewRecommendService(
	catalog *recommender.Catalog,
	matrix *recommender.Matrix,
	recRepo *repository.RecommendationRepository,
) *RecommendService {
	return &RecommendService{
		catalog: catalog,
		matrix:  matrix,
		recRepo: recRepo,
	}
}

type RecRequest struct {
	Title     string
	Languages []string
	Genres    []string
	TopN      int
	Refresh   bool
}

func cacheKey(req RecRequest) string {
	// Cachea por la query completa (no incluye refresh, refresh solo decide
	// si usar cache)
	return fmt.Sprintf("rec:t:%s:l:%s:g:%s:n:%d",
		req.Title,
		strings.Join(req.Languages, ","),
		strings.Join(req.Genres, ","),
		req.TopN,
	)
}

// Recommend ejecuta la query contra el artefacto cargado.
func (s *RecommendService) Recommend(ctx context.Context, req RecRequest) ([]models.Movie, error) {
	if req.TopN <= 0 {
		req.TopN = recommender.DefaultTopN
	} else if req.TopN > recommender.MaxTopN {
		req.TopN = recommender.MaxTopN
	}

	// 1) Cache Redis (solo si refresh = false)
	var cached []models.Movie
	if !req.Refresh {
		if ok, err := cache.GetJSON(ctx, cacheKey(req), &cached); err == nil && ok {
			return cached, nil
		}
	}

	// 2) Motor puro: toda irregularidad resuelve a resultado vacío
	items := recommender.Recommend(s.catalog, s.matrix, recommender.Query{
		Title:     req.Title,
		Languages: req.Languages,
		Genres:    req.Genres,
		TopN:      req.TopN,
	})

	// 3) Historial en Mongo (no rompemos la respuesta si falla)
	if s.recRepo != nil {
		mode := "exploration"
		if req.Title != "" {
			mode = "similarity"
		}
		titles := make([]string, len(items))
		for i, mv := range items {
			titles[i] = mv.Title
		}
		hist := &models.Recommendation{
			Mode:      mode,
			Title:     req.Title,
			Languages: req.Languages,
			Genres:    req.Genres,
			TopN:      req.TopN,
			Titles:    titles,
			CreatedAt: time.Now(),
		}
		if err := s.recRepo.Insert(ctx, hist); err != nil {
			log.Printf("error guardando historial en Mongo: %v", err)
		}
	}

	// 4) Cachear en Redis (1 hora)
	if err := cache.SetJSON(ctx, cacheKey(req), items, 60*60); err != nil {
		log.Printf("error cacheando recomendación en Redis: %v", err)
	}

	return items, nil
}
