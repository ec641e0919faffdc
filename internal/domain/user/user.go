package user

import (
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already taken")
)

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // never expose hash in JSON
	CreatedAt    time.Time `json:"createdAt"`
}

// Signup and login share the same shape and constraints.
type Credentials struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=6,max=128"`
}

// Public is the representation returned to clients: id and username only.
type Public struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

func (u User) Public() Public {
	return Public{ID: u.ID, Username: u.Username}
}
