package user

import (
	"errors"
	"time"
)

type User struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	Password    string    `json:"-"`
	DisplayName *string   `json:"display_name"`
	Role        string    `json:"role"` // USER, ADMIN
	JoinDate    time.Time `json:"join_date"`
	UpdatedAt   time.Time `json:"updated_at"`
}

var (
	ErrNotFound      = errors.New("user not found")
	ErrAlreadyExists = errors.New("username or email already exists")
	ErrEmailTaken    = errors.New("email already in use")
)
