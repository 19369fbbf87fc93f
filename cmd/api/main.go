package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"cinematch-backend/internal/cache"
	"cinematch-backend/internal/config"
	"cinematch-backend/internal/db"
	"cinematch-backend/internal/handler"
	"cinematch-backend/internal/repository"
	"cinematch-backend/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title CineMatch Recommender API
// @version 1.0
// @description API de recomendación de películas por contenido (soups + coseno, Mongo, Redis)
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	// Mongo y Redis
	db.InitMongo(cfg)
	cache.InitRedis(cfg)

	// repos
	userRepo := repository.NewUserRepository()
	movieReqRepo := repository.NewMovieRequestRepository()
	recRepo := repository.NewRecommendationRepository()
	artifactRepo := repository.NewArtifactRepository()

	// ==========================================
	// Cargar el artefacto (catálogo + matriz)
	// ==========================================
	// El artefacto es inmutable durante la vida del proceso: si está
	// desalineado o no existe, no hay nada que servir.
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	catalog, matrix, _, err := artifactRepo.Load(ctx)
	cancel()
	if err != nil {
		log.Fatalf("[api] no se pudo cargar el artefacto: %v (corre el builder primero)", err)
	}
	log.Printf("[api] artefacto cargado: %d películas, matriz %dx%d",
		catalog.Len(), matrix.Dim, matrix.Dim)

	// services
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)
	movieSvc := service.NewMovieService(catalog)
	movieReqSvc := service.NewMovieRequestService(movieReqRepo, artifactRepo)
	recSvc := service.NewRecommendService(catalog, matrix, recRepo)
	buildSvc := service.NewBuildService(artifactRepo, cfg.MaxFeatures, cfg.BuildWorkers)

	// handlers
	authH := handler.NewAuthHandler(authSvc)
	movieH := handler.NewMovieHandler(movieSvc)
	movieReqH := handler.NewMovieRequestHandler(movieReqSvc)
	recH := handler.NewRecommendHandler(recSvc)
	adminBuildH := handler.NewAdminBuildHandler(buildSvc, recRepo)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// =============
	// Rutas públicas
	// =============
	r.Get("/health", handler.Health)

	r.Post("/auth/register", authH.Register)
	r.Post("/auth/login", authH.Login)

	// Catálogo (público)
	r.Get("/movies", movieH.Search)
	r.Get("/movies/top", movieH.Top)
	r.Get("/movies/{id}", movieH.GetByID)

	// Recomendaciones (públicas, son el producto)
	r.Get("/recommendations", recH.GetRecommendations)

	// ===========================
	// Rutas protegidas con JWT
	// ===========================
	authMw := handler.JWTAuth(cfg.JWTSecret)

	r.Group(func(r chi.Router) {
		r.Use(authMw)

		// ---- Endpoints /me (USER normal) ----
		r.Route("/me", func(r chi.Router) {
			r.Get("/movie-requests", movieReqH.ListMine)
			r.Post("/movie-requests", movieReqH.Create)
		})

		// ---- Endpoints solo ADMIN ----
		r.Group(func(r chi.Router) {
			r.Use(handler.AdminOnly())

			// gestión de usuarios
			r.Get("/users", authH.ListUsers)
			r.Get("/users/{id}", authH.GetUserByID)
			r.Put("/users/{id}/update", authH.UpdateUser)

			// movie-requests (ADMIN)
			r.Get("/admin/movie-requests", movieReqH.ListAll)
			r.Post("/admin/movie-requests/{id}/approve", movieReqH.Approve)
			r.Post("/admin/movie-requests/{id}/reject", movieReqH.Reject)

			// artefacto: resumen, rebuild HTTP y rebuild con progreso por WS
			r.Get("/admin/artifact", adminBuildH.GetSummary)
			r.Post("/admin/artifact/rebuild", adminBuildH.Rebuild)
			r.Get("/admin/artifact/ws/rebuild", adminBuildH.RebuildWS)

			// historial de consultas servidas
			r.Get("/admin/recommendations", adminBuildH.RecentQueries)
		})
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Printf("HTTP escuchando en :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}
