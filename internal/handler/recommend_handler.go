package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"cinematch-backend/internal/models"
	"cinematch-backend/internal/service"
)

type RecommendHandler struct {
	svc *service.RecommendService
}

func NewRecommendHandler(s *service.RecommendService) *RecommendHandler {
	return &RecommendHandler{svc: s}
}

// splitCSVParam parte un query param tipo "en,es" en valores no vacíos.
func splitCSVParam(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// @Summary Recomendaciones de películas
// @Description Sin title corre en modo exploración (filtros + corte de calidad); con title corre por similitud de contenido.
// @Tags recommend
// @Produce json
// @Param title query string false "título exacto para modo similitud"
// @Param languages query string false "idiomas separados por coma (ej: en,es)"
// @Param genres query string false "géneros separados por coma (ej: action,drama)"
// @Param n query int false "cantidad de resultados (default 10, máx 50)"
// @Param refresh query bool false "si true, ignora cache Redis"
// @Success 200 {array} models.Movie
// @Router /recommendations [get]
func (h *RecommendHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	q := r.URL.Query()
	n, _ := strconv.Atoi(q.Get("n"))
	refresh := q.Get("refresh") == "true"

	items, err := h.svc.Recommend(r.Context(), service.RecRequest{
		Title:     q.Get("title"),
		Languages: splitCSVParam(q.Get("languages")),
		Genres:    splitCSVParam(q.Get("genres")),
		TopN:      n,
		Refresh:   refresh,
	})
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	if items == nil {
		items = []models.Movie{}
	}
	_ = json.NewEncoder(w).Encode(items)
}
