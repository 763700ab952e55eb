package models

// User mirrors the client's account record verbatim. The server never
// generates or mutates these fields outside of a fresh backup call.
type User struct {
	ID        string `json:"id" bson:"id" binding:"required"`
	Email     string `json:"email" bson:"email" binding:"required"`
	Name      string `json:"name" bson:"name" binding:"required"`
	CreatedAt string `json:"created_at" bson:"created_at" binding:"required"`
}
