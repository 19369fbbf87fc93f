package recommender

import (
	"sort"

	"cinematch-backend/internal/models"
)

const (
	DefaultTopN = 10
	MaxTopN     = 50 // por seguridad, no deja pedir 1000 ítems

	// En modo similitud solo se filtra sobre los top candidateFactor*N
	// candidatos por coseno crudo. La ventana mantiene barato el filtrado
	// pero puede devolver menos de N aunque existan más películas válidas
	// más abajo del ranking: comportamiento conocido y preservado.
	candidateFactor = 5

	directorBoost = 0.10
	castBoost     = 0.10
)

// Query es una consulta al motor. Title vacío = modo exploración;
// Title presente = modo similitud.
type Query struct {
	Title     string
	Languages []string
	Genres    []string
	TopN      int
}

// Recommend es el entry point online. Toda irregularidad por query (título
// desconocido, filtros que vacían los candidatos) resuelve a resultado
// vacío o reducido, nunca a error: el motor es una función pura de
// (catálogo, matriz, parámetros).
func Recommend(c *Catalog, m *Matrix, q Query) []models.Movie {
	if q.TopN <= 0 {
		q.TopN = DefaultTopN
	} else if q.TopN > MaxTopN {
		q.TopN = MaxTopN
	}

	if q.Title == "" {
		return explore(c, q)
	}
	return similar(c, m, q)
}

// explore rankea por popularidad/calidad dentro de los filtros.
// Regla de fallbacks: los filtros que pidió el caller son duros (si vacían
// el set, la respuesta honesta es vacío); el corte de vote_count es una
// heurística de calidad agregada por el sistema y es blando (si vacía el
// set, se vuelve al set pre-corte).
func explore(c *Catalog, q Query) []models.Movie {
	langs := toSet(q.Languages)
	genres := toSet(q.Genres)

	var filtered []int
	for i := range c.Movies {
		mv := &c.Movies[i]
		if len(langs) > 0 {
			if _, ok := langs[mv.OriginalLanguage]; !ok {
				continue
			}
		}
		if len(genres) > 0 && !intersects(mv.GenresList, genres) {
			continue
		}
		filtered = append(filtered, i)
	}
	if len(filtered) == 0 {
		return []models.Movie{}
	}

	// corte al percentil 70 de vote_count dentro del set filtrado
	counts := make([]float64, len(filtered))
	for k, i := range filtered {
		counts[k] = c.Movies[i].VoteCount
	}
	threshold := quantileLinear(counts, 0.70)

	gated := filtered[:0:0]
	for _, i := range filtered {
		if c.Movies[i].VoteCount >= threshold {
			gated = append(gated, i)
		}
	}
	if len(gated) == 0 {
		gated = filtered
	}

	// orden estable: empates de vote_average quedan en orden de catálogo
	sort.SliceStable(gated, func(a, b int) bool {
		return c.Movies[gated[a]].VoteAverage > c.Movies[gated[b]].VoteAverage
	})

	return c.take(gated, q.TopN)
}

// similar genera candidatos por coseno y los re-puntúa con boosts planos de
// metadata compartida (director +0.10, cast +0.10, aditivos).
func similar(c *Catalog, m *Matrix, q Query) []models.Movie {
	src, ok := c.ByTitle(q.Title)
	if !ok {
		return []models.Movie{}
	}
	source := &c.Movies[src]
	sourceCast := toSet(source.CastList)

	// si el caller no dio idiomas, quedarse cerca del idioma fuente con
	// inglés siempre permitido como fallback amplio
	var allowed map[string]struct{}
	if len(q.Languages) == 0 {
		if source.OriginalLanguage == "en" {
			allowed = toSet([]string{"en"})
		} else {
			allowed = toSet([]string{source.OriginalLanguage, "en"})
		}
	} else {
		allowed = toSet(q.Languages)
	}
	targetGenres := toSet(q.Genres)

	row := m.Row(src)

	// ranking por similitud cruda, excluyendo la fila fuente
	order := make([]int, 0, len(row)-1)
	for j := range row {
		if j != src {
			order = append(order, j)
		}
	}
	sort.SliceStable(order, func(a, b int) bool {
		return row[order[a]] > row[order[b]]
	})

	window := candidateFactor * q.TopN
	if window > len(order) {
		window = len(order)
	}
	order = order[:window]

	type scored struct {
		idx   int
		score float64
	}
	var candidates []scored

	for _, j := range order {
		mv := &c.Movies[j]

		if _, ok := allowed[mv.OriginalLanguage]; !ok {
			continue
		}
		if len(targetGenres) > 0 && !intersects(mv.GenresList, targetGenres) {
			continue
		}

		score := row[j]
		if source.DirectorClean != "" && mv.DirectorClean == source.DirectorClean {
			score += directorBoost
		}
		if sharesAny(mv.CastList, sourceCast) {
			score += castBoost
		}
		candidates = append(candidates, scored{idx: j, score: score})
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].score > candidates[b].score
	})

	top := make([]int, 0, q.TopN)
	for _, cand := range candidates {
		if len(top) == q.TopN {
			break
		}
		top = append(top, cand.idx)
	}
	return c.take(top, q.TopN)
}

func (c *Catalog) take(indices []int, topN int) []models.Movie {
	if len(indices) > topN {
		indices = indices[:topN]
	}
	out := make([]models.Movie, 0, len(indices))
	for _, i := range indices {
		out = append(out, c.Movies[i])
	}
	return out
}

func toSet(items []string) map[string]struct{} {
	s := make(map[string]struct{}, len(items))
	for _, it := range items {
		if it != "" {
			s[it] = struct{}{}
		}
	}
	return s
}

func intersects(items []string, set map[string]struct{}) bool {
	for _, it := range items {
		if _, ok := set[it]; ok {
			return true
		}
	}
	return false
}

func sharesAny(items []string, set map[string]struct{}) bool {
	return intersects(items, set)
}
