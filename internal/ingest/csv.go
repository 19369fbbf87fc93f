package ingest

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"cinematch-backend/internal/models"
)

// Columnas esperadas en el CSV del catálogo. Las que falten se tratan como
// vacías (la normalización las coerce después, nunca falla por metadata).
var movieColumns = []string{
	"title", "overview", "genres", "keywords", "cast", "director",
	"vote_average", "vote_count", "original_language", "poster_url",
}

// ReadMovies lee el CSV crudo del catálogo y devuelve una fila RawMovie por
// registro. Solo exige que exista la columna title; el resto es opcional.
func ReadMovies(path string) ([]models.RawMovie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("abrir %s: %w", path, err)
	}
	defer f.Close()

	return readMovies(bufio.NewReader(f))
}

func readMovies(r io.Reader) ([]models.RawMovie, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // acepta filas cortas/largas
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("leer cabecera: %w", err)
	}

	colIdx := make(map[string]int, len(header))
	for i, h := range header {
		colIdx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := colIdx["title"]; !ok {
		return nil, fmt.Errorf("cabecera inesperada: falta columna title (columnas esperadas: %s)",
			strings.Join(movieColumns, ", "))
	}

	field := func(row []string, name string) string {
		i, ok := colIdx[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var out []models.RawMovie
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// fila malformada: se salta, no aborta el batch completo
			continue
		}
		out = append(out, models.RawMovie{
			Title:            field(row, "title"),
			Overview:         field(row, "overview"),
			Genres:           field(row, "genres"),
			Keywords:         field(row, "keywords"),
			Cast:             field(row, "cast"),
			Director:         field(row, "director"),
			VoteAverage:      field(row, "vote_average"),
			VoteCount:        field(row, "vote_count"),
			OriginalLanguage: field(row, "original_language"),
			PosterURL:        field(row, "poster_url"),
		})
	}
	return out, nil
}
