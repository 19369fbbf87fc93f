package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payload para proponer una película nueva. Las aprobadas se agregan a
// raw_movies y entran al catálogo recién en el siguiente rebuild completo;
// el artefacto que está sirviendo nunca se toca.
type MovieCreateRequest struct {
	Title            string   `json:"title"` // obligatorio
	Overview         string   `json:"overview,omitempty"`
	Genres           []string `json:"genres,omitempty"`
	Keywords         []string `json:"keywords,omitempty"`
	Cast             []string `json:"cast,omitempty"`
	Director         string   `json:"director,omitempty"`
	OriginalLanguage string   `json:"originalLanguage,omitempty"`
	VoteAverage      float64  `json:"voteAverage,omitempty"`
	VoteCount        float64  `json:"voteCount,omitempty"`
	PosterURL        string   `json:"posterUrl,omitempty"`
}

// Estados posibles del request
const (
	MovieRequestStatusPending  = "pending"
	MovieRequestStatusApproved = "approved"
	MovieRequestStatusRejected = "rejected"
)

// Documento para la colección movie_requests
type MovieRequest struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID    int                `json:"userId" bson:"userId"`
	Status    string             `json:"status" bson:"status"` // pending|approved|rejected
	Movie     MovieCreateRequest `json:"movie" bson:"movie"`
	Reason    string             `json:"reason,omitempty" bson:"reason,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Body para rechazar un request de película.
type RejectMovieRequest struct {
	Reason string `json:"reason"`
}
