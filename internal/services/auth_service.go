package services

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"footballapi/internal/models"
	"footballapi/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/pbkdf2"
)

// ErrInvalidCredentials means the user exists but the password did not match.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Key-derivation parameters for stored passwords. Deliberately slow.
const (
	saltBytes        = 16
	pbkdf2Iterations = 10000
	pbkdf2KeyLength  = 64 // 512-bit derived key
)

// tokenDuration is how long an issued token stays valid.
const tokenDuration = 60 * 24 * time.Hour

// HashPassword generates a random hex-encoded salt and derives a
// PBKDF2-SHA512 hash of the plaintext keyed by it. The same plaintext with a
// different salt yields a different hash.
func HashPassword(password string) (salt, hash string, err error) {
	raw := make([]byte, saltBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", "", fmt.Errorf("failed to generate salt: %w", err)
	}
	salt = hex.EncodeToString(raw)
	derived := pbkdf2.Key([]byte(password), []byte(salt), pbkdf2Iterations, pbkdf2KeyLength, sha512.New)
	return salt, hex.EncodeToString(derived), nil
}

// VerifyPassword re-derives the hash from the candidate password and the
// stored salt and compares it against the stored hash in constant time.
func VerifyPassword(password, salt, hash string) bool {
	derived := pbkdf2.Key([]byte(password), []byte(salt), pbkdf2Iterations, pbkdf2KeyLength, sha512.New)
	return subtle.ConstantTimeCompare([]byte(hex.EncodeToString(derived)), []byte(hash)) == 1
}

// AuthService handles business logic for authentication and authorization.
type AuthService struct {
	userRepo  repositories.UserRepository
	jwtSecret []byte
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
	}
}

// SignUp hashes the password and persists the new user. Uniqueness of email
// and username is left to the store's constraints; a violation comes back as
// repositories.ErrConflict.
func (s *AuthService) SignUp(user *models.User, password string) error {
	salt, hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	user.Salt = salt
	user.Hash = hash

	if err := s.userRepo.Create(user); err != nil {
		return fmt.Errorf("failed to sign up user: %w", err)
	}
	return nil
}

// SignIn authenticates by username or email and returns the user and a
// signed token. An unknown login surfaces repositories.ErrNotFound; a wrong
// password surfaces ErrInvalidCredentials.
func (s *AuthService) SignIn(login, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetByUsernameOrEmail(login)
	if err != nil {
		return nil, "", err
	}

	if !VerifyPassword(password, user.Salt, user.Hash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// GenerateToken issues a signed token carrying the user's identity and role
// claims, expiring 60 days from now.
func (s *AuthService) GenerateToken(user *models.User) (string, error) {
	if len(s.jwtSecret) == 0 {
		return "", fmt.Errorf("jwt secret is not configured")
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
		"type":     user.Type,
		"exp":      now.Add(tokenDuration).Unix(),
		"iat":      now.Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a token, returning its claims if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}
