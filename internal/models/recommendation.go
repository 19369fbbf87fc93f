package models

import "time"

// Historial de consultas servidas (best effort, nunca rompe la respuesta).
type Recommendation struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Mode      string    `bson:"mode"          json:"mode"` // "exploration" | "similarity"
	Title     string    `bson:"title,omitempty" json:"title,omitempty"`
	Languages []string  `bson:"languages,omitempty" json:"languages,omitempty"`
	Genres    []string  `bson:"genres,omitempty" json:"genres,omitempty"`
	TopN      int       `bson:"topN"          json:"topN"`
	Titles    []string  `bson:"titles"        json:"titles"`
	CreatedAt time.Time `bson:"createdAt"     json:"createdAt"`
}
