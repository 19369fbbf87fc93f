package recommender

import (
	"strconv"
	"strings"

	"cinematch-backend/internal/models"
)

// Catalog es la tabla de metadata filtrable del catálogo, en el mismo orden
// de filas que la matriz de similitud. Se construye una vez, offline, y el
// motor de consultas la lee sin mutarla jamás.
type Catalog struct {
	Movies []models.Movie

	// título exacto (case-sensitive) -> rowIdx; ante títulos duplicados
	// gana el primero (los duplicados no se deduplican).
	titleIdx map[string]int
}

// NewCatalog arma el catálogo asignando RowIdx = posición de la fila.
// Ese RowIdx es la identidad que indexa la matriz: reordenar las películas
// después del build invalida el artefacto.
func NewCatalog(movies []models.Movie) *Catalog {
	c := &Catalog{
		Movies:   movies,
		titleIdx: make(map[string]int, len(movies)),
	}
	for i := range c.Movies {
		c.Movies[i].RowIdx = i
		if _, seen := c.titleIdx[c.Movies[i].Title]; !seen {
			c.titleIdx[c.Movies[i].Title] = i
		}
	}
	return c
}

// Len devuelve la cantidad de filas del catálogo.
func (c *Catalog) Len() int { return len(c.Movies) }

// ByTitle resuelve un título exacto a su fila (primer match).
func (c *Catalog) ByTitle(title string) (int, bool) {
	i, ok := c.titleIdx[title]
	return i, ok
}

// BuildOptions configura el pipeline offline.
type BuildOptions struct {
	// MaxFeatures acota el vocabulario del vectorizador (default 5000).
	MaxFeatures int
	// Workers para el cálculo de la matriz (<= 0: NumCPU).
	Workers int
	// Progress, si no es nil, se llama al inicio de cada etapa.
	Progress func(stage string)
}

const DefaultMaxFeatures = 5000

// Build es el único entry point del batch offline:
// normalización -> soups -> vectorización -> matriz de similitud.
// Devuelve el par (catálogo, matriz) alineado por rowIdx más el vocabulario
// como artefacto nombrado.
func Build(rows []models.RawMovie, opts BuildOptions) (*Catalog, *Matrix, *Vocabulary) {
	if opts.MaxFeatures == 0 {
		opts.MaxFeatures = DefaultMaxFeatures
	}
	progress := opts.Progress
	if progress == nil {
		progress = func(string) {}
	}

	progress("normalize")
	movies := make([]models.Movie, len(rows))
	for i, raw := range rows {
		movies[i] = normalizeMovie(raw)
	}
	catalog := NewCatalog(movies)

	progress("soup")
	soups := make([]string, len(rows))
	for i, raw := range rows {
		soups[i] = BuildSoup(raw)
	}

	progress("vectorize")
	vocab := FitVocabulary(soups, opts.MaxFeatures)
	vectors := make([][]float64, len(soups))
	for i, soup := range soups {
		vectors[i] = vocab.Vectorize(soup)
	}

	progress("similarity")
	matrix := CosineMatrix(vectors, opts.Workers)

	return catalog, matrix, vocab
}

// normalizeMovie pasa una fila cruda al registro filtrable del catálogo.
// Votos faltantes o no parseables se coercen a 0.
func normalizeMovie(raw models.RawMovie) models.Movie {
	return models.Movie{
		Title:            strings.TrimSpace(raw.Title),
		PosterURL:        strings.TrimSpace(raw.PosterURL),
		OriginalLanguage: strings.TrimSpace(raw.OriginalLanguage),
		VoteAverage:      parseFloatOrZero(raw.VoteAverage),
		VoteCount:        parseFloatOrZero(raw.VoteCount),
		Overview:         raw.Overview,
		GenresList:       CleanGenreList(raw.Genres),
		DirectorClean:    CleanIdentifier(raw.Director),
		CastList:         SplitCastList(raw.Cast),
	}
}

func parseFloatOrZero(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
