package auth

import (
	"fmt"
	"time"

	"rally-backend/internal/database/models"
	apperrors "rally-backend/internal/errors"
	"rally-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 14

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID  string `json:"user_id" example:"6f1c7e1a-0b2d-4c3e-9f4a-5b6c7d8e9f0a"`
	Email   string `json:"email" example:"ross@example.com"`
	IsAdmin bool   `json:"is_admin" example:"false"`
	jwt.RegisteredClaims
}

// AuthService issues and validates credentials for user accounts
type AuthService struct {
	users       repository.UserRepositoryInterface
	validate    *validator.Validate
	jwtSecret   []byte
	tokenExpiry time.Duration
}

// NewAuthService creates a new authentication service
func NewAuthService(users repository.UserRepositoryInterface, validate *validator.Validate, jwtSecret string, tokenExpiry time.Duration) *AuthService {
	return &AuthService{
		users:       users,
		validate:    validate,
		jwtSecret:   []byte(jwtSecret),
		tokenExpiry: tokenExpiry,
	}
}

// Register validates and creates a new user account with a hashed password
func (s *AuthService) Register(email, password, firstName, lastName string) (*models.User, error) {
	hash, err := s.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		FirstName:    firstName,
		LastName:     lastName,
	}
	if err := s.validate.Struct(user); err != nil {
		return nil, apperrors.NewValidationError("user", err.Error())
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// HashPassword hashes a plaintext password for storage
func (s *AuthService) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}

// CheckPassword reports whether the plaintext password matches the stored hash
func (s *AuthService) CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Authenticate verifies an email/password pair and returns the matching user
func (s *AuthService) Authenticate(email, password string) (*models.User, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		// same error for unknown email and wrong password
		return nil, apperrors.ErrInvalidCredentials
	}
	if !s.CheckPassword(user.PasswordHash, password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}

// GenerateJWT creates a signed token for the user
func (s *AuthService) GenerateJWT(user *models.User) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID:  user.ID.String(),
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "rally-backend",
			Subject:   user.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}

// UserIDFromClaims parses the claim subject back into a user ID
func UserIDFromClaims(claims *AuthClaims) (uuid.UUID, error) {
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, apperrors.ErrInvalidToken
	}
	return id, nil
}
