package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"cinematch-backend/internal/service"

	"github.com/go-chi/chi/v5"
)

type MovieHandler struct {
	svc *service.MovieService
}

func NewMovieHandler(s *service.MovieService) *MovieHandler {
	return &MovieHandler{svc: s}
}

// @Summary Buscar películas en el catálogo
// @Tags movies
// @Produce json
// @Param q query string false "substring del título"
// @Param genre query string false "género limpio (ej: sciencefiction)"
// @Param limit query int false "límite (default: 20)"
// @Param offset query int false "offset (default: 0)"
// @Success 200 {array} models.Movie
// @Router /movies [get]
func (h *MovieHandler) Search(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))

	items := h.svc.Search(q.Get("q"), q.Get("genre"), limit, offset)
	_ = json.NewEncoder(w).Encode(items)
}

// @Summary Top de películas por métrica
// @Tags movies
// @Produce json
// @Param metric query string false "rating|votes (default: rating)"
// @Param limit query int false "límite (default: 10)"
// @Success 200 {array} models.Movie
// @Router /movies/top [get]
func (h *MovieHandler) Top(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	metric := r.URL.Query().Get("metric")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	items := h.svc.Top(metric, limit)
	_ = json.NewEncoder(w).Encode(items)
}

// @Summary Obtener película por fila del catálogo
// @Tags movies
// @Produce json
// @Param id path int true "rowIdx"
// @Success 200 {object} models.Movie
// @Failure 404 {object} map[string]string
// @Router /movies/{id} [get]
func (h *MovieHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	m, ok := h.svc.GetMovie(id)
	if !ok {
		http.NotFound(w, r)
		return
	}
	_ = json.NewEncoder(w).Encode(m)
}
