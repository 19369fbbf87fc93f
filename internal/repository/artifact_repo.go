package repository

import (
	"context"
	"fmt"
	"time"

	"cinematch-backend/internal/db"
	"cinematch-backend/internal/models"
	"cinematch-backend/internal/recommender"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ArtifactRepository persiste el artefacto del build offline: catálogo +
// matriz de similitud + vocabulario + meta, alineados por rowIdx. También
// administra raw_movies, la tabla cruda que consume el siguiente rebuild.
type ArtifactRepository struct {
	catalog *mongo.Collection
	sims    *mongo.Collection
	vocab   *mongo.Collection
	meta    *mongo.Collection
	raw     *mongo.Collection
}

func NewArtifactRepository() *ArtifactRepository {
	mdb := db.DB()
	return &ArtifactRepository{
		catalog: mdb.Collection("catalog"),
		sims:    mdb.Collection("similarities"),
		vocab:   mdb.Collection("vocabulary"),
		meta:    mdb.Collection("artifact_meta"),
		raw:     mdb.Collection("raw_movies"),
	}
}

// Save reemplaza el artefacto completo (el rebuild es siempre total, no hay
// camino incremental): borra las colecciones y escribe el build nuevo.
func (r *ArtifactRepository) Save(
	ctx context.Context,
	catalog *recommender.Catalog,
	matrix *recommender.Matrix,
	vocab *recommender.Vocabulary,
	maxFeatures int,
) error {
	if catalog.Len() != matrix.Dim {
		return fmt.Errorf("artefacto desalineado: catálogo=%d filas, matriz=%d", catalog.Len(), matrix.Dim)
	}

	for _, col := range []*mongo.Collection{r.catalog, r.sims, r.vocab, r.meta} {
		if err := col.Drop(ctx); err != nil {
			return fmt.Errorf("drop %s: %w", col.Name(), err)
		}
	}

	if catalog.Len() > 0 {
		docs := make([]any, catalog.Len())
		for i := range catalog.Movies {
			docs[i] = catalog.Movies[i]
		}
		if _, err := r.catalog.InsertMany(ctx, docs); err != nil {
			return fmt.Errorf("insertar catálogo: %w", err)
		}

		simDocs := make([]any, matrix.Dim)
		for i := 0; i < matrix.Dim; i++ {
			simDocs[i] = models.SimilarityRowDoc{RowIdx: i, Scores: matrix.Rows[i]}
		}
		if _, err := r.sims.InsertMany(ctx, simDocs); err != nil {
			return fmt.Errorf("insertar similitudes: %w", err)
		}
	}

	vocabDoc := models.VocabularyDoc{Terms: vocab.Terms, MaxFeatures: maxFeatures}
	if _, err := r.vocab.InsertOne(ctx, vocabDoc); err != nil {
		return fmt.Errorf("insertar vocabulario: %w", err)
	}

	metaDoc := models.ArtifactMeta{
		Rows:      catalog.Len(),
		Dim:       matrix.Dim,
		VocabSize: len(vocab.Terms),
		BuiltAt:   time.Now().UTC().Format(time.RFC3339),
	}
	if _, err := r.meta.InsertOne(ctx, metaDoc); err != nil {
		return fmt.Errorf("insertar meta: %w", err)
	}
	return nil
}

// Load carga el artefacto completo en memoria. La validación estructural
// (filas del catálogo == dimensión de la matriz == documentos reales) es
// fatal acá, al arranque del proceso que sirve: nunca es un error por query.
func (r *ArtifactRepository) Load(ctx context.Context) (*recommender.Catalog, *recommender.Matrix, *recommender.Vocabulary, error) {
	var meta models.ArtifactMeta
	if err := r.meta.FindOne(ctx, bson.M{}).Decode(&meta); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil, nil, fmt.Errorf("no hay artefacto persistido: correr el builder primero")
		}
		return nil, nil, nil, err
	}

	// catálogo en orden de rowIdx (el orden ES la identidad de la matriz)
	opts := options.Find().SetSort(bson.D{{Key: "rowIdx", Value: 1}})
	cur, err := r.catalog.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, nil, nil, err
	}
	defer cur.Close(ctx)

	var movies []models.Movie
	for cur.Next(ctx) {
		var m models.Movie
		if err := cur.Decode(&m); err != nil {
			return nil, nil, nil, err
		}
		movies = append(movies, m)
	}
	if err := cur.Err(); err != nil {
		return nil, nil, nil, err
	}

	simCur, err := r.sims.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "rowIdx", Value: 1}}))
	if err != nil {
		return nil, nil, nil, err
	}
	defer simCur.Close(ctx)

	matrix := &recommender.Matrix{}
	for simCur.Next(ctx) {
		var row models.SimilarityRowDoc
		if err := simCur.Decode(&row); err != nil {
			return nil, nil, nil, err
		}
		if row.RowIdx != len(matrix.Rows) {
			return nil, nil, nil, fmt.Errorf("artefacto corrupto: fila de similitud %d fuera de orden (esperaba %d)",
				row.RowIdx, len(matrix.Rows))
		}
		matrix.Rows = append(matrix.Rows, row.Scores)
	}
	if err := simCur.Err(); err != nil {
		return nil, nil, nil, err
	}
	matrix.Dim = len(matrix.Rows)

	// chequeo de alineación: cualquier mismatch invalida el artefacto
	if len(movies) != meta.Rows || matrix.Dim != meta.Dim || len(movies) != matrix.Dim {
		return nil, nil, nil, fmt.Errorf(
			"artefacto desalineado: meta=%d/%d, catálogo=%d, matriz=%d (rehacer el build completo)",
			meta.Rows, meta.Dim, len(movies), matrix.Dim)
	}
	for i := range matrix.Rows {
		if len(matrix.Rows[i]) != matrix.Dim {
			return nil, nil, nil, fmt.Errorf("artefacto corrupto: fila %d tiene %d columnas, esperaba %d",
				i, len(matrix.Rows[i]), matrix.Dim)
		}
	}

	var vocabDoc models.VocabularyDoc
	if err := r.vocab.FindOne(ctx, bson.M{}).Decode(&vocabDoc); err != nil && err != mongo.ErrNoDocuments {
		return nil, nil, nil, err
	}

	return recommender.NewCatalog(movies), matrix, recommender.NewVocabulary(vocabDoc.Terms), nil
}

// ---------------------- raw_movies ----------------------

// ReplaceRawMovies reemplaza la tabla cruda completa (seed del builder).
func (r *ArtifactRepository) ReplaceRawMovies(ctx context.Context, rows []models.RawMovie) error {
	if err := r.raw.Drop(ctx); err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	docs := make([]any, len(rows))
	for i := range rows {
		docs[i] = rows[i]
	}
	_, err := r.raw.InsertMany(ctx, docs)
	return err
}

// AppendRawMovie agrega una fila cruda (movie request aprobado); entra al
// catálogo recién en el siguiente rebuild.
func (r *ArtifactRepository) AppendRawMovie(ctx context.Context, row models.RawMovie) error {
	_, err := r.raw.InsertOne(ctx, row)
	return err
}

// LoadRawMovies devuelve la tabla cruda completa en orden de inserción.
func (r *ArtifactRepository) LoadRawMovies(ctx context.Context) ([]models.RawMovie, error) {
	cur, err := r.raw.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.RawMovie
	for cur.Next(ctx) {
		var m models.RawMovie
		if err := cur.Decode(&m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, cur.Err()
}

// Summary junta los contadores que ve el admin.
func (r *ArtifactRepository) Summary(ctx context.Context) (*models.ArtifactSummary, error) {
	catalogRows, err := r.catalog.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	simRows, err := r.sims.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	rawRows, err := r.raw.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	var meta models.ArtifactMeta
	err = r.meta.FindOne(ctx, bson.M{}).Decode(&meta)
	if err != nil && err != mongo.ErrNoDocuments {
		return nil, err
	}

	return &models.ArtifactSummary{
		CatalogRows:    int(catalogRows),
		SimilarityRows: int(simRows),
		VocabSize:      meta.VocabSize,
		RawMovies:      int(rawRows),
		BuiltAt:        meta.BuiltAt,
		Aligned:        catalogRows == simRows && int(catalogRows) == meta.Rows && meta.Rows == meta.Dim,
	}, nil
}
