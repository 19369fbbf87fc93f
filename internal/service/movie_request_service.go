package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cinematch-backend/internal/models"
	"cinematch-backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MovieRequestService struct {
	repo      *repository.MovieRequestRepository
	artifacts *repository.ArtifactRepository
}

func NewMovieRequestService(
	repo *repository.MovieRequestRepository,
	artifacts *repository.ArtifactRepository,
) *MovieRequestService {
	return &MovieRequestService{
		repo:      repo,
		artifacts: artifacts,
	}
}

// Crear request (user)
func (s *MovieRequestService) CreateRequest(
	ctx context.Context,
	userID int,
	req *models.MovieCreateRequest,
) (*models.MovieRequest, error) {

	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("title is required")
	}

	now := time.Now()

	mr := &models.MovieRequest{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Status:    models.MovieRequestStatusPending,
		Movie:     *req,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Insert(ctx, mr); err != nil {
		return nil, err
	}
	return mr, nil
}

func (s *MovieRequestService) ListMine(
	ctx context.Context,
	userID int,
	status string,
	limit, offset int,
) ([]models.MovieRequest, error) {

	return s.repo.FindByUser(ctx, userID, status, limit, offset)
}

func (s *MovieRequestService) ListAll(
	ctx context.Context,
	status string,
	limit, offset int,
) ([]models.MovieRequest, error) {

	return s.repo.FindAll(ctx, status, limit, offset)
}

// Aprobar request: agrega la fila a raw_movies y marca el request como
// approved. La película entra al catálogo recién en el siguiente rebuild.
func (s *MovieRequestService) Approve(
	ctx context.Context,
	id primitive.ObjectID,
	override *models.MovieCreateRequest,
) (*models.MovieRequest, error) {

	mr, err := s.repo.FindByID(ctx, id)
	if err != nil || mr == nil {
		return mr, err
	}
	if mr.Status != models.MovieRequestStatusPending {
		return mr, nil // handler puede devolver 400 si no está pending
	}

	// Datos finales de película = request original + override (si viene)
	payload := mr.Movie
	if override != nil {
		if override.Title != "" {
			payload.Title = override.Title
		}
		if override.Overview != "" {
			payload.Overview = override.Overview
		}
		if len(override.Genres) > 0 {
			payload.Genres = override.Genres
		}
		if len(override.Keywords) > 0 {
			payload.Keywords = override.Keywords
		}
		if len(override.Cast) > 0 {
			payload.Cast = override.Cast
		}
		if override.Director != "" {
			payload.Director = override.Director
		}
		if override.OriginalLanguage != "" {
			payload.OriginalLanguage = override.OriginalLanguage
		}
		if override.VoteAverage > 0 {
			payload.VoteAverage = override.VoteAverage
		}
		if override.VoteCount > 0 {
			payload.VoteCount = override.VoteCount
		}
		if override.PosterURL != "" {
			payload.PosterURL = override.PosterURL
		}
	}

	if err := s.artifacts.AppendRawMovie(ctx, rawFromRequest(payload)); err != nil {
		return mr, err
	}

	mr.Status = models.MovieRequestStatusApproved
	mr.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, mr); err != nil {
		return mr, err
	}

	return mr, nil
}

// Rechazar request
func (s *MovieRequestService) Reject(
	ctx context.Context,
	id primitive.ObjectID,
	reason string,
) (*models.MovieRequest, error) {

	mr, err := s.repo.FindByID(ctx, id)
	if err != nil || mr == nil {
		return mr, err
	}
	if mr.Status != models.MovieRequestStatusPending {
		return mr, nil
	}

	mr.Status = models.MovieRequestStatusRejected
	mr.Reason = reason
	mr.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, mr); err != nil {
		return mr, err
	}
	return mr, nil
}

// rawFromRequest convierte el payload JSON al formato de fila cruda que
// espera el pipeline (listas unidas con coma, números como texto).
func rawFromRequest(p models.MovieCreateRequest) models.RawMovie {
	return models.RawMovie{
		Title:            p.Title,
		Overview:         p.Overview,
		Genres:           strings.Join(p.Genres, ", "),
		Keywords:         strings.Join(p.Keywords, ", "),
		Cast:             strings.Join(p.Cast, ", "),
		Director:         p.Director,
		OriginalLanguage: p.OriginalLanguage,
		VoteAverage:      strconv.FormatFloat(p.VoteAverage, 'f', -1, 64),
		VoteCount:        strconv.FormatFloat(p.VoteCount, 'f', -1, 64),
		PosterURL:        p.PosterURL,
	}
}
