package models

import "time"

// User is one registered account. Email acts as the natural key: at most one
// User per email value. PasswordHash holds a bcrypt hash; the plaintext
// password is never persisted.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}
