package service

import (
	"context"
	"fmt"
	"time"

	"contractwise-backend/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// DefaultTokenTTL is the access token validity applied when the config does
// not set one.
const DefaultTokenTTL = 2 * time.Hour

// AuthConfig holds the token signing settings. It is immutable and injected
// at construction; the service never reads signing material from ambient
// state.
type AuthConfig struct {
	Secret   string
	TokenTTL time.Duration
}

// AuthService issues and verifies access tokens and manages user accounts.
// Tokens carry the user ID as the subject claim; every protected route
// treats that subject as the tenant key.
type AuthService struct {
	users UserStore
	cfg   AuthConfig
}

// AuthServiceOption is a functional option for AuthService
type AuthServiceOption func(*AuthService)

// AuthWithUserStore sets the user store
func AuthWithUserStore(store UserStore) AuthServiceOption {
	return func(s *AuthService) {
		s.users = store
	}
}

// AuthWithConfig sets the auth configuration
func AuthWithConfig(cfg AuthConfig) AuthServiceOption {
	return func(s *AuthService) {
		s.cfg = cfg
	}
}

// NewAuthService creates a new auth service
func NewAuthService(opts ...AuthServiceOption) *AuthService {
	s := &AuthService{}
	for _, opt := range opts {
		opt(s)
	}
	if s.cfg.TokenTTL == 0 {
		s.cfg.TokenTTL = DefaultTokenTTL
	}
	return s
}

// Signup registers a new user with a bcrypt-hashed password
func (s *AuthService) Signup(ctx context.Context, username, password string) (*models.User, error) {
	existing, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hashed),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies the credentials and returns a signed access token
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.createAccessToken(user.ID)
}

// createAccessToken signs an HS256 token with the user ID as subject
func (s *AuthService) createAccessToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID.String(),
		"iat": jwt.NewNumericDate(now),
		"exp": jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
	})

	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken validates a bearer token and extracts the user ID. Any
// failure (bad signature, expiry, missing subject) maps to ErrInvalidToken.
func (s *AuthService) VerifyToken(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, ErrInvalidToken
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return uuid.Nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}

	return userID, nil
}
