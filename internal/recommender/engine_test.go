package recommender

import (
	"testing"

	"cinematch-backend/internal/models"
)

// Catálogo de 3 películas usado por los escenarios end-to-end.
func buildTestArtifact(t *testing.T) (*Catalog, *Matrix) {
	t.Helper()
	rows := []models.RawMovie{
		{
			Title: "Alpha", Genres: "action", Director: "J Smith",
			Cast: "A Actor", OriginalLanguage: "en",
			VoteAverage: "7.0", VoteCount: "100",
		},
		{
			Title: "Beta", Genres: "action", Director: "J Smith",
			Cast: "B Actor", OriginalLanguage: "en",
			VoteAverage: "6.0", VoteCount: "50",
		},
		{
			Title: "Gamma", Genres: "drama", Director: "K Doe",
			Cast: "C Actor", OriginalLanguage: "hi",
			VoteAverage: "9.0", VoteCount: "10",
		},
	}
	catalog, matrix, _ := Build(rows, BuildOptions{Workers: 1})
	return catalog, matrix
}

// Escenario A del spec de pruebas: modo similitud sobre "Alpha" sin filtros.
// Idiomas permitidos default {"en"} (fuente ya es inglés): "Gamma" queda
// fuera por idioma, "Beta" entra con boost de director, "Alpha" se excluye.
func TestSimilarityModeScenario(t *testing.T) {
	catalog, matrix := buildTestArtifact(t)

	got := Recommend(catalog, matrix, Query{Title: "Alpha", TopN: 2})
	if len(got) != 1 {
		t.Fatalf("resultado = %d películas, want 1: %+v", len(got), got)
	}
	if got[0].Title != "Beta" {
		t.Errorf("resultado[0] = %q, want Beta", got[0].Title)
	}
}

// Escenario B: modo exploración sin filtros, topN=2. El percentil 70 de
// vote_count {10,50,100} es 70 (interpolación lineal): solo "Alpha" (100)
// pasa el corte.
func TestExplorationModeScenario(t *testing.T) {
	catalog, matrix := buildTestArtifact(t)

	got := Recommend(catalog, matrix, Query{TopN: 2})
	if len(got) != 1 {
		t.Fatalf("resultado = %d películas, want 1: %+v", len(got), got)
	}
	if got[0].Title != "Alpha" {
		t.Errorf("resultado[0] = %q, want Alpha", got[0].Title)
	}
}

func TestUnknownTitleReturnsEmpty(t *testing.T) {
	catalog, matrix := buildTestArtifact(t)
	got := Recommend(catalog, matrix, Query{Title: "NoExiste", TopN: 5})
	if len(got) != 0 {
		t.Errorf("título desconocido devolvió %d películas, want 0", len(got))
	}
}

func TestSourceNeverInItsOwnResults(t *testing.T) {
	catalog, matrix := buildTestArtifact(t)
	got := Recommend(catalog, matrix, Query{Title: "Alpha", TopN: 10})
	for _, mv := range got {
		if mv.Title == "Alpha" {
			t.Error("la película fuente apareció en sus propias recomendaciones")
		}
	}
}

func TestExplorationFiltersAndOrder(t *testing.T) {
	rows := []models.RawMovie{
		{Title: "A", Genres: "action", OriginalLanguage: "en", VoteAverage: "6.0", VoteCount: "10"},
		{Title: "B", Genres: "action|comedy", OriginalLanguage: "en", VoteAverage: "8.0", VoteCount: "10"},
		{Title: "C", Genres: "drama", OriginalLanguage: "en", VoteAverage: "9.0", VoteCount: "10"},
		{Title: "D", Genres: "action", OriginalLanguage: "hi", VoteAverage: "9.5", VoteCount: "10"},
	}
	catalog, matrix, _ := Build(rows, BuildOptions{Workers: 1})

	got := Recommend(catalog, matrix, Query{
		Languages: []string{"en"},
		Genres:    []string{"action"},
		TopN:      10,
	})

	// todo resultado respeta idioma y géneros pedidos
	for _, mv := range got {
		if mv.OriginalLanguage != "en" {
			t.Errorf("%q tiene idioma %q, want en", mv.Title, mv.OriginalLanguage)
		}
		if !intersects(mv.GenresList, toSet([]string{"action"})) {
			t.Errorf("%q no intersecta los géneros pedidos", mv.Title)
		}
	}

	// ordenado por vote_average descendente
	for i := 1; i < len(got); i++ {
		if got[i-1].VoteAverage < got[i].VoteAverage {
			t.Errorf("resultado desordenado: %v antes de %v",
				got[i-1].VoteAverage, got[i].VoteAverage)
		}
	}

	// C (drama) y D (hi) no pueden aparecer
	for _, mv := range got {
		if mv.Title == "C" || mv.Title == "D" {
			t.Errorf("%q no debería pasar los filtros", mv.Title)
		}
	}
}

func TestExplorationEmptyFilterNoFallback(t *testing.T) {
	catalog, matrix := buildTestArtifact(t)
	got := Recommend(catalog, matrix, Query{Languages: []string{"fr"}, TopN: 5})
	if len(got) != 0 {
		t.Errorf("filtro sin matches devolvió %d películas, want 0 (sin fallback)", len(got))
	}
}

func TestResultNeverExceedsTopN(t *testing.T) {
	rows := make([]models.RawMovie, 0, 8)
	for _, title := range []string{"M1", "M2", "M3", "M4", "M5", "M6", "M7", "M8"} {
		rows = append(rows, models.RawMovie{
			Title: title, Genres: "action", OriginalLanguage: "en",
			VoteAverage: "7.0", VoteCount: "10",
		})
	}
	catalog, matrix, _ := Build(rows, BuildOptions{Workers: 1})

	for _, q := range []Query{
		{TopN: 3},
		{Title: "M1", TopN: 3},
	} {
		got := Recommend(catalog, matrix, q)
		if len(got) > q.TopN {
			t.Errorf("query %+v devolvió %d > topN %d", q, len(got), q.TopN)
		}
	}
}

// Con matriz armada a mano para que dos candidatos tengan el mismo coseno:
// el que comparte director tiene que quedar al menos tan arriba.
func TestDirectorBoostIsMonotonic(t *testing.T) {
	catalog := NewCatalog([]models.Movie{
		{Title: "Src", OriginalLanguage: "en", DirectorClean: "dd", GenresList: []string{"g"}},
		{Title: "NoDir", OriginalLanguage: "en", DirectorClean: "xx", GenresList: []string{"g"}},
		{Title: "WithDir", OriginalLanguage: "en", DirectorClean: "dd", GenresList: []string{"g"}},
	})
	matrix := &Matrix{Dim: 3, Rows: [][]float64{
		{1.0, 0.5, 0.5},
		{0.5, 1.0, 0.2},
		{0.5, 0.2, 1.0},
	}}

	got := Recommend(catalog, matrix, Query{Title: "Src", TopN: 2})
	if len(got) != 2 {
		t.Fatalf("resultado = %d películas, want 2", len(got))
	}
	if got[0].Title != "WithDir" {
		t.Errorf("resultado[0] = %q, want WithDir (boost de director)", got[0].Title)
	}
}

// Fuente no inglesa y caller sin preferencia: permitidos = {fuente, "en"}.
func TestDefaultLanguageKeepsSourceLanguagePlusEnglish(t *testing.T) {
	catalog := NewCatalog([]models.Movie{
		{Title: "Fuente", OriginalLanguage: "hi"},
		{Title: "Hindi", OriginalLanguage: "hi"},
		{Title: "Ingles", OriginalLanguage: "en"},
		{Title: "Frances", OriginalLanguage: "fr"},
	})
	matrix := &Matrix{Dim: 4, Rows: [][]float64{
		{1.0, 0.9, 0.8, 0.7},
		{0.9, 1.0, 0.1, 0.1},
		{0.8, 0.1, 1.0, 0.1},
		{0.7, 0.1, 0.1, 1.0},
	}}

	got := Recommend(catalog, matrix, Query{Title: "Fuente", TopN: 3})
	seen := map[string]bool{}
	for _, mv := range got {
		seen[mv.Title] = true
		if mv.OriginalLanguage != "hi" && mv.OriginalLanguage != "en" {
			t.Errorf("%q (idioma %q) no debería pasar el default {hi,en}", mv.Title, mv.OriginalLanguage)
		}
	}
	if !seen["Hindi"] || !seen["Ingles"] {
		t.Errorf("faltan candidatos válidos en %v", got)
	}
}

// Títulos duplicados: gana el primero del catálogo.
func TestDuplicateTitleFirstMatchWins(t *testing.T) {
	catalog := NewCatalog([]models.Movie{
		{Title: "Dup", OriginalLanguage: "en"},
		{Title: "Dup", OriginalLanguage: "hi"},
	})
	idx, ok := catalog.ByTitle("Dup")
	if !ok || idx != 0 {
		t.Errorf("ByTitle(Dup) = %d,%v, want 0,true", idx, ok)
	}
}
