package domain

import "errors"

var (
	ErrInvalidRole       = errors.New("invalid role")
	ErrAccountNotFound   = errors.New("user not found")
	ErrInvalidCredential = errors.New("invalid password")
	ErrAccountExists     = errors.New("account already exists")
	ErrStore             = errors.New("credential store failure")
	ErrVerifier          = errors.New("password verifier failure")
	ErrProvider          = errors.New("identity provider failure")
	ErrSessionNotFound   = errors.New("session not found")
	ErrProfileNotFound   = errors.New("profile not found")
	ErrProfileExists     = errors.New("profile already exists")
	ErrForbidden         = errors.New("access forbidden")
)
