package models

// RawMovie es una fila tal cual viene del CSV (o de un movie request aprobado).
// Los campos multivalor (genres, cast, keywords) vienen como string con
// delimitadores "," o "|"; los votos vienen como texto y se coercen al
// construir el catálogo (valor inválido -> 0, nunca error).
type RawMovie struct {
	Title            string `json:"title" bson:"title"`
	Overview         string `json:"overview" bson:"overview"`
	Genres           string `json:"genres" bson:"genres"`
	Keywords         string `json:"keywords" bson:"keywords"`
	Cast             string `json:"cast" bson:"cast"`
	Director         string `json:"director" bson:"director"`
	VoteAverage      string `json:"voteAverage" bson:"voteAverage"`
	VoteCount        string `json:"voteCount" bson:"voteCount"`
	OriginalLanguage string `json:"originalLanguage" bson:"originalLanguage"`
	PosterURL        string `json:"posterUrl" bson:"posterUrl"`
}

// Movie es una entrada del catálogo ya normalizada.
// RowIdx es el id entero explícito asignado al construir el catálogo y es la
// identidad que indexa la matriz de similitud; si el catálogo se reordena
// después del build, el artefacto queda inválido.
type Movie struct {
	RowIdx           int      `json:"rowIdx" bson:"rowIdx"`
	Title            string   `json:"title" bson:"title"`
	PosterURL        string   `json:"posterUrl,omitempty" bson:"posterUrl,omitempty"`
	OriginalLanguage string   `json:"originalLanguage" bson:"originalLanguage"`
	VoteAverage      float64  `json:"voteAverage" bson:"voteAverage"`
	VoteCount        float64  `json:"voteCount" bson:"voteCount"`
	Overview         string   `json:"overview,omitempty" bson:"overview,omitempty"`
	GenresList       []string `json:"genresList" bson:"genresList"`
	DirectorClean    string   `json:"directorClean,omitempty" bson:"directorClean,omitempty"`
	CastList         []string `json:"castList" bson:"castList"`
}
