package friendship

import (
	"errors"
	"time"
)

const (
	StatusPending  = "PENDING"
	StatusAccepted = "ACCEPTED"
	StatusBlocked  = "BLOCKED"
)

var (
	ErrNotFound      = errors.New("friendship not found")
	ErrAlreadyExists = errors.New("friendship already exists")
	ErrSelfRequest   = errors.New("cannot send a friend request to yourself")
	ErrNotPending    = errors.New("friend request is not pending")
)

// Friendship is a directed request from RequesterID to AddresseeID. An
// accepted row is treated as symmetric when listing friends.
type Friendship struct {
	ID          string     `json:"id"`
	RequesterID string     `json:"requester_id"`
	AddresseeID string     `json:"addressee_id"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	AcceptedAt  *time.Time `json:"accepted_at,omitempty"`
}

// Friend is the public identity of a confirmed friend.
type Friend struct {
	UserID      string    `json:"user_id"`
	Username    string    `json:"username"`
	DisplayName *string   `json:"display_name,omitempty"`
	Since       time.Time `json:"since"`
}

// Request is an incoming pending request with the sender's identity.
type Request struct {
	Friendship
	RequesterUsername string `json:"requester_username"`
}
