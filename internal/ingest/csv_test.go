package ingest

import (
	"strings"
	"testing"
)

func TestReadMoviesMapsColumns(t *testing.T) {
	data := `title,overview,genres,keywords,cast,director,vote_average,vote_count,original_language,poster_url
Alpha,"A hero, rises",Action|Drama,hero,A Actor|B Actor,J Smith,7.0,100,en,http://img/alpha.jpg
Beta,,Comedy,,,,,,,
`
	movies, err := readMovies(strings.NewReader(data))
	if err != nil {
		t.Fatalf("readMovies: %v", err)
	}
	if len(movies) != 2 {
		t.Fatalf("len = %d, want 2", len(movies))
	}

	alpha := movies[0]
	if alpha.Title != "Alpha" || alpha.Genres != "Action|Drama" ||
		alpha.Cast != "A Actor|B Actor" || alpha.VoteCount != "100" {
		t.Errorf("fila Alpha mal mapeada: %+v", alpha)
	}
	if alpha.Overview != "A hero, rises" {
		t.Errorf("overview con comas entrecomilladas mal leído: %q", alpha.Overview)
	}

	beta := movies[1]
	if beta.Title != "Beta" || beta.VoteAverage != "" || beta.Director != "" {
		t.Errorf("los campos faltantes deben quedar vacíos: %+v", beta)
	}
}

func TestReadMoviesHeaderOrderIrrelevant(t *testing.T) {
	data := `original_language,title,vote_average
en,Gamma,9.0
`
	movies, err := readMovies(strings.NewReader(data))
	if err != nil {
		t.Fatalf("readMovies: %v", err)
	}
	if movies[0].Title != "Gamma" || movies[0].OriginalLanguage != "en" || movies[0].VoteAverage != "9.0" {
		t.Errorf("mapeo por nombre de columna falló: %+v", movies[0])
	}
}

func TestReadMoviesMissingTitleColumn(t *testing.T) {
	if _, err := readMovies(strings.NewReader("overview,genres\nfoo,bar\n")); err == nil {
		t.Error("cabecera sin title debería ser error")
	}
}
