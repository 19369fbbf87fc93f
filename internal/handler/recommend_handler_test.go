package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cinematch-backend/internal/models"
	"cinematch-backend/internal/recommender"
	"cinematch-backend/internal/service"

	"github.com/go-chi/chi/v5"
)

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()

	rows := []models.RawMovie{
		{Title: "Alpha", Genres: "Action", Keywords: "space", Cast: "Ann Lee", Director: "Maya Chen", OriginalLanguage: "en", VoteAverage: "8.0", VoteCount: "100"},
		{Title: "Beta", Genres: "Action", Keywords: "space", Cast: "Ann Lee", Director: "Maya Chen", OriginalLanguage: "en", VoteAverage: "7.0", VoteCount: "50"},
		{Title: "Gamma", Genres: "Drama", Keywords: "family", Cast: "Bo Diaz", Director: "Sam Ruiz", OriginalLanguage: "fr", VoteAverage: "9.0", VoteCount: "10"},
	}
	catalog, matrix, _ := recommender.Build(rows, recommender.BuildOptions{Workers: 1})

	// sin Redis ni Mongo: cache miss siempre, historial deshabilitado
	recSvc := service.NewRecommendService(catalog, matrix, nil)

	r := chi.NewRouter()
	r.Get("/recommendations", NewRecommendHandler(recSvc).GetRecommendations)
	return r
}

func doGet(t *testing.T, router *chi.Mux, url string) (*httptest.ResponseRecorder, []models.Movie) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var items []models.Movie
	if rec.Code == http.StatusOK {
		if err := json.NewDecoder(rec.Body).Decode(&items); err != nil {
			t.Fatalf("respuesta no es JSON de películas: %v", err)
		}
	}
	return rec, items
}

func TestGetRecommendationsSimilarity(t *testing.T) {
	router := newTestRouter(t)

	rec, items := doGet(t, router, "/recommendations?title=Alpha&n=2")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, esperaba 200", rec.Code)
	}
	if len(items) == 0 || items[0].Title != "Beta" {
		t.Fatalf("esperaba Beta primero, got %+v", items)
	}
	for _, m := range items {
		if m.Title == "Alpha" {
			t.Fatalf("la película fuente no puede aparecer en sus propios resultados")
		}
	}
}

func TestGetRecommendationsExploration(t *testing.T) {
	router := newTestRouter(t)

	rec, items := doGet(t, router, "/recommendations?languages=fr&genres=drama&n=5")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, esperaba 200", rec.Code)
	}
	if len(items) != 1 || items[0].Title != "Gamma" {
		t.Fatalf("esperaba [Gamma], got %+v", items)
	}
}

func TestGetRecommendationsUnknownTitle(t *testing.T) {
	router := newTestRouter(t)

	rec, items := doGet(t, router, "/recommendations?title=NoExiste")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, esperaba 200 con lista vacía", rec.Code)
	}
	if len(items) != 0 {
		t.Fatalf("esperaba lista vacía, got %+v", items)
	}
}

func TestSplitCSVParam(t *testing.T) {
	got := splitCSVParam(" en, es ,,fr ")
	want := []string{"en", "es", "fr"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
