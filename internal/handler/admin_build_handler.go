package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"cinematch-backend/internal/repository"
	"cinematch-backend/internal/service"

	"github.com/gorilla/websocket"
)

// AdminBuildHandler expone el rebuild del artefacto y sus contadores.
type AdminBuildHandler struct {
	builds  *service.BuildService
	recRepo *repository.RecommendationRepository
}

func NewAdminBuildHandler(b *service.BuildService, recRepo *repository.RecommendationRepository) *AdminBuildHandler {
	return &AdminBuildHandler{builds: b, recRepo: recRepo}
}

// @Summary Resumen del artefacto persistido (ADMIN)
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.ArtifactSummary
// @Router /admin/artifact [get]
func (h *AdminBuildHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	summary, err := h.builds.Summary(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(summary)
}

// @Summary Rebuild completo del artefacto (ADMIN)
// @Description Corre el pipeline entero sobre raw_movies y reemplaza las colecciones del artefacto. El API sirve el artefacto viejo hasta reiniciar.
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.ArtifactSummary
// @Failure 409 {object} map[string]string
// @Router /admin/artifact/rebuild [post]
func (h *AdminBuildHandler) Rebuild(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	summary, err := h.builds.Rebuild(r.Context(), nil)
	if err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	_ = json.NewEncoder(w).Encode(summary)
}

// upgrader global (no afecta a swagger)
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary Rebuild con progreso en tiempo real (WebSocket, ADMIN)
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /admin/artifact/ws/rebuild [get]
func (h *AdminBuildHandler) RebuildWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "No se pudo abrir WebSocket", 400)
		return
	}
	defer conn.Close()

	// Mensaje inicial
	conn.WriteJSON(map[string]any{
		"type": "start",
		"msg":  "Conexión WS abierta, iniciando rebuild…",
	})

	summary, err := h.builds.Rebuild(r.Context(), func(p service.BuildProgress) {
		if werr := conn.WriteJSON(map[string]any{
			"type":     "progress",
			"progress": p,
		}); werr != nil {
			log.Printf("error escribiendo progreso por WS: %v", werr)
		}
	})
	if err != nil {
		conn.WriteJSON(map[string]any{
			"type":  "error",
			"error": err.Error(),
		})
		return
	}

	// Mensaje final con el resumen
	conn.WriteJSON(map[string]any{
		"type":    "done",
		"summary": summary,
	})
}

// @Summary Últimas consultas de recomendación servidas (ADMIN)
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param limit query int false "límite (default: 20)"
// @Success 200 {array} models.Recommendation
// @Router /admin/recommendations [get]
func (h *AdminBuildHandler) RecentQueries(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = 20
	}

	items, err := h.recRepo.FindRecent(r.Context(), int64(limit))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(items)
}
