package models

type UserDoc struct {
	UserID       int    `json:"userId" bson:"userId"`
	Email        string `json:"email" bson:"email"`
	Username     string `json:"username,omitempty" bson:"username,omitempty"`
	PasswordHash string `json:"-" bson:"passwordHash"`
	Role         string `json:"role" bson:"role"`
	CreatedAt    string `json:"createdAt" bson:"createdAt"`
	UpdatedAt    string `json:"updatedAt" bson:"updatedAt"`
}
