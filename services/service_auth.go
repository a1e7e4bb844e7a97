package services

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"threads-backend/dto"
	"threads-backend/internal/repository"
	"threads-backend/model"
)

const tokenTTL = 15 * 24 * time.Hour

// AuthService handles signup and login against the user directory.
type AuthService struct {
	users repository.UserStore
}

func NewAuthService(users repository.UserStore) *AuthService {
	return &AuthService{users: users}
}

func (s *AuthService) Signup(ctx context.Context, body dto.SignupDTO) (dto.AuthResponse, error) {
	if body.Name == "" || body.Username == "" || body.Email == "" || body.Password == "" {
		return dto.AuthResponse{}, fmt.Errorf("%w: name, username, email and password are required", ErrInvalidInput)
	}

	if _, err := s.users.FindByUsername(ctx, body.Username); err == nil {
		return dto.AuthResponse{}, fmt.Errorf("%w: username already taken", ErrInvalidInput)
	} else if err != repository.ErrNotFound {
		return dto.AuthResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return dto.AuthResponse{}, err
	}

	user, err := s.users.Insert(ctx, model.User{
		Name:      body.Name,
		Username:  body.Username,
		Email:     strings.ToLower(body.Email),
		Password:  string(hashed),
		Followers: nil,
		Following: nil,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return dto.AuthResponse{}, err
	}

	return s.authResponse(user)
}

func (s *AuthService) Login(ctx context.Context, body dto.LoginDTO) (dto.AuthResponse, error) {
	if body.Username == "" || body.Password == "" {
		return dto.AuthResponse{}, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	user, err := s.users.FindByUsername(ctx, body.Username)
	if err != nil {
		if err == repository.ErrNotFound {
			return dto.AuthResponse{}, fmt.Errorf("%w: invalid username or password", ErrUnauthorized)
		}
		return dto.AuthResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		return dto.AuthResponse{}, fmt.Errorf("%w: invalid username or password", ErrUnauthorized)
	}

	return s.authResponse(user)
}

func (s *AuthService) authResponse(user model.User) (dto.AuthResponse, error) {
	token, err := signToken(user.ID.Hex())
	if err != nil {
		return dto.AuthResponse{}, err
	}
	return dto.AuthResponse{
		ID:       user.ID.Hex(),
		Name:     user.Name,
		Username: user.Username,
		Token:    token,
	}, nil
}

func signToken(uid string) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", fmt.Errorf("JWT_SECRET not set")
	}
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   uid,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
