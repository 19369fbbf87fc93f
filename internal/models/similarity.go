package models

// SimilarityRowDoc es una fila densa de la matriz de similitud coseno.
// Scores[j] = sim(RowIdx, j); len(Scores) == dimensión de la matriz.
type SimilarityRowDoc struct {
	RowIdx int       `json:"rowIdx" bson:"rowIdx"`
	Scores []float64 `json:"scores" bson:"scores"`
}

// VocabularyDoc es el vocabulario compartido del vectorizador, persistido
// junto a la matriz para que los rebuilds sean reproducibles y el motor de
// consultas nunca tenga que re-entrenar nada.
type VocabularyDoc struct {
	Terms       []string `json:"terms" bson:"terms"`
	MaxFeatures int      `json:"maxFeatures" bson:"maxFeatures"`
}

// ArtifactMeta describe el artefacto persistido. En el load se valida que
// Rows == Dim == documentos reales; un mismatch es error fatal de carga,
// nunca un error por query.
type ArtifactMeta struct {
	Rows      int    `json:"rows" bson:"rows"`
	Dim       int    `json:"dim" bson:"dim"`
	VocabSize int    `json:"vocabSize" bson:"vocabSize"`
	BuiltAt   string `json:"builtAt" bson:"builtAt"`
}

// ArtifactSummary es lo que ve el admin en /admin/artifact/summary.
type ArtifactSummary struct {
	CatalogRows    int    `json:"catalogRows"`
	SimilarityRows int    `json:"similarityRows"`
	VocabSize      int    `json:"vocabSize"`
	RawMovies      int    `json:"rawMovies"`
	BuiltAt        string `json:"builtAt,omitempty"`
	Aligned        bool   `json:"aligned"`
}
