package auth

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"newsmark/internal/config"
	"newsmark/internal/utils/crypto"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Service handles authentication business logic
type Service struct {
	repo   UsersRepo
	config config.Config
	log    *slog.Logger
}

// NewService creates a new auth service
func NewService(repo UsersRepo, cfg config.Config, log *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		config: cfg,
		log:    log,
	}
}

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	Name     string `json:"name" validate:"required" example:"Jane Reader"`
	Email    string `json:"email" validate:"required,email" example:"test@example.com"`
	Password string `json:"password" validate:"required" example:"Password123"`
}

// LoginRequest represents a user login request
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"test@example.com"`
	Password string `json:"password" validate:"required" example:"Password123"`
}

// RegisterResponse represents the response for successful registration
type RegisterResponse struct {
	Message string `json:"message" example:"User registered successfully"`
	User    *User  `json:"user"`
}

// LoginResponse represents the response for successful authentication
type LoginResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	User  *User  `json:"user"`
}

// Register creates a new user account. Duplicate emails are rejected with
// ErrEmailTaken; the unique index on email is the authoritative signal.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	email := normalizeEmail(req.Email)

	hashedPassword, err := crypto.HashPassword(req.Password, s.config.BcryptCost)
	if err != nil {
		s.log.Error("failed to hash password", "error", err)
		return nil, errors.New("failed to process password")
	}

	user := &User{
		ID:           bson.NewObjectID(),
		Name:         req.Name,
		Email:        email,
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		s.log.Error("failed to create user", "error", err)
		return nil, errors.New("failed to create user")
	}

	return &RegisterResponse{
		Message: "User registered successfully",
		User:    user,
	}, nil
}

// Login verifies credentials and issues a signed token. Unknown email and
// wrong password both come back as ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	email := normalizeEmail(req.Email)

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.Error("failed to find user by email", "error", err)
		}
		return nil, ErrInvalidCredentials
	}

	if err := crypto.CheckPassword(req.Password, user.PasswordHash); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.generateJWT(user)
	if err != nil {
		s.log.Error("failed to generate token", "error", err)
		return nil, ErrGenToken
	}

	return &LoginResponse{
		Token: token,
		User:  user,
	}, nil
}

// Profile returns the account behind a verified token claim.
func (s *Service) Profile(ctx context.Context, userID bson.ObjectID) (*User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to find user by id", "error", err, "user_id", userID.Hex())
		return nil, err
	}
	return user, nil
}

func (s *Service) generateJWT(user *User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.ID.Hex(),
		"name":    user.Name,
		"email":   user.Email,
		"iat":     now.Unix(),
		"exp":     now.Add(time.Duration(s.config.TokenTTLMinutes) * time.Minute).Unix(),
	}

	alg := strings.ToUpper(s.config.JWTAlgorithm)
	var method jwt.SigningMethod
	switch alg {
	case "HS256":
		method = jwt.SigningMethodHS256
	default:
		return "", errors.New("unsupported JWT algorithm")
	}

	token := jwt.NewWithClaims(method, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// normalizeEmail trims surrounding whitespace only. Emails are stored and
// matched case-sensitively, so "A@b.com" and "a@b.com" are distinct accounts.
func normalizeEmail(email string) string {
	return strings.TrimSpace(email)
}
