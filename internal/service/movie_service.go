// internal/service/movie_service.go
package service

import (
	"sort"
	"strings"

	"cinematch-backend/internal/models"
	"cinematch-backend/internal/recommender"
)

// MovieService expone el catálogo en memoria (el mismo que usa el motor).
// No toca Mongo: el catálogo ya cargado es la fuente de verdad del proceso.
type MovieService struct {
	catalog *recommender.Catalog
}

func NewMovieService(c *recommender.Catalog) *MovieService {
	return &MovieService{catalog: c}
}

// GetMovie resuelve por rowIdx.
func (s *MovieService) GetMovie(rowIdx int) (*models.Movie, bool) {
	if rowIdx < 0 || rowIdx >= s.catalog.Len() {
		return nil, false
	}
	m := s.catalog.Movies[rowIdx]
	return &m, true
}

// GetByTitle resuelve un título exacto (primer match ante duplicados).
func (s *MovieService) GetByTitle(title string) (*models.Movie, bool) {
	i, ok := s.catalog.ByTitle(title)
	if !ok {
		return nil, false
	}
	m := s.catalog.Movies[i]
	return &m, true
}

// Search filtra por substring de título (case-insensitive) y género limpio.
func (s *MovieService) Search(q, genre string, limit, offset int) []models.Movie {
	if limit <= 0 {
		limit = 20
	}
	q = strings.ToLower(strings.TrimSpace(q))
	genre = strings.ToLower(strings.TrimSpace(genre))

	var out []models.Movie
	skipped := 0
	for _, m := range s.catalog.Movies {
		if q != "" && !strings.Contains(strings.ToLower(m.Title), q) {
			continue
		}
		if genre != "" && !hasGenre(m, genre) {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		out = append(out, m)
		if len(out) >= limit {
			break
		}
	}
	if out == nil {
		out = []models.Movie{}
	}
	return out
}

// Top devuelve las mejores películas por métrica ("rating" o "votes").
func (s *MovieService) Top(metric string, limit int) []models.Movie {
	if limit <= 0 {
		limit = 10
	}

	out := make([]models.Movie, len(s.catalog.Movies))
	copy(out, s.catalog.Movies)

	switch metric {
	case "votes":
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].VoteCount > out[j].VoteCount
		})
	default: // rating
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].VoteAverage > out[j].VoteAverage
		})
	}

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func hasGenre(m models.Movie, genre string) bool {
	for _, g := range m.GenresList {
		if g == genre {
			return true
		}
	}
	return false
}
