package main

import (
	"context"
	"log"
	"time"

	"cinematch-backend/internal/config"
	"cinematch-backend/internal/db"
	"cinematch-backend/internal/ingest"
	"cinematch-backend/internal/recommender"
	"cinematch-backend/internal/repository"
)

// Batch offline: lee el CSV del catálogo, corre el pipeline completo
// (normalización -> soups -> vectorización -> matriz de coseno) y persiste
// el artefacto en Mongo. El API lo carga al arrancar.
func main() {
	cfg := config.Load()

	db.InitMongo(cfg)

	log.Printf("[builder] leyendo %s", cfg.MoviesCSV)
	rows, err := ingest.ReadMovies(cfg.MoviesCSV)
	if err != nil {
		log.Fatalf("[builder] error leyendo CSV: %v", err)
	}
	log.Printf("[builder] %d filas crudas", len(rows))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	artifactRepo := repository.NewArtifactRepository()

	// Guardamos la tabla cruda completa: los rebuilds posteriores (y los
	// movie requests aprobados) parten de acá, no del CSV.
	if err := artifactRepo.ReplaceRawMovies(ctx, rows); err != nil {
		log.Fatalf("[builder] error guardando raw_movies: %v", err)
	}

	start := time.Now()
	catalog, matrix, vocab := recommender.Build(rows, recommender.BuildOptions{
		MaxFeatures: cfg.MaxFeatures,
		Workers:     cfg.BuildWorkers,
		Progress: func(stage string) {
			log.Printf("[builder] etapa %s (acumulado %s)", stage, time.Since(start))
		},
	})
	log.Printf("[builder] pipeline OK: %d películas, vocab=%d, matriz %dx%d, en %s",
		catalog.Len(), len(vocab.Terms), matrix.Dim, matrix.Dim, time.Since(start))

	if err := artifactRepo.Save(ctx, catalog, matrix, vocab, cfg.MaxFeatures); err != nil {
		log.Fatalf("[builder] error persistiendo artefacto: %v", err)
	}

	summary, err := artifactRepo.Summary(ctx)
	if err != nil {
		log.Fatalf("[builder] error leyendo resumen: %v", err)
	}
	log.Printf("[builder] artefacto persistido: catalog=%d, similarities=%d, vocab=%d, aligned=%v",
		summary.CatalogRows, summary.SimilarityRows, summary.VocabSize, summary.Aligned)
}
