package service

import "errors"

var (
	ErrUserExists         = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrNoDocuments        = errors.New("no documents found for this user")
	ErrIngestion          = errors.New("failed to store contract")
)
