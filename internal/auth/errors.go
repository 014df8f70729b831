package auth

import (
	"errors"

	"blog-backend/internal/models"
)

var (
	ErrNoToken       = errors.New("no token provided")
	ErrInvalidToken  = errors.New("invalid token")
	ErrUserExists    = errors.New("user already exists")
	ErrUserNotFound  = errors.New("user not found")
	ErrWrongPassword = errors.New("wrong password")
	ErrForbidden     = errors.New("not the owner of this resource")

	// ErrValidation is returned when required fields are missing
	ErrValidation = models.ErrValidation
)
