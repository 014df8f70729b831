package models

import (
	"fmt"
	"strings"
	"time"
)

// User represents a registered blog author
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Credentials is the request body for registration and login
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate rejects credentials with a missing username or password
func (c Credentials) Validate() error {
	if strings.TrimSpace(c.Username) == "" || c.Password == "" {
		return fmt.Errorf("%w: no username or password provided", ErrValidation)
	}
	return nil
}

// ProfileUpdate is the request body for PATCH /user-info.
// Empty fields are left untouched.
type ProfileUpdate struct {
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
}

// IsEmpty reports whether the update changes nothing
func (u ProfileUpdate) IsEmpty() bool {
	return u.Username == "" && u.Password == ""
}
