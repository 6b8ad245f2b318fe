package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"rentintel/internal/config"
	"rentintel/internal/domain"
)

// Claims represents the JWT claims for a landlord session.
type Claims struct {
	jwt.RegisteredClaims
	Role domain.UserRole `json:"role"`
}

// Session holds an issued access token.
type Session struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// LoginInput is the DTO for the landlord PIN gate.
type LoginInput struct {
	PIN string `json:"pin" binding:"required"`
}

// AuthService guards the landlord views behind a PIN and issues session tokens.
type AuthService interface {
	LoginLandlord(input LoginInput) (*Session, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type authService struct {
	pinHash []byte
	cfg     config.AuthConfig
}

// NewAuthService creates a new AuthService. The configured PIN is hashed at
// construction so the plaintext never lives beyond startup.
func NewAuthService(cfg config.AuthConfig) (AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.PIN), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("auth.NewAuthService: hashing PIN: %w", err)
	}
	return &authService{pinHash: hash, cfg: cfg}, nil
}

func (s *authService) LoginLandlord(input LoginInput) (*Session, error) {
	if err := bcrypt.CompareHashAndPassword(s.pinHash, []byte(input.PIN)); err != nil {
		return nil, domain.ErrInvalidPIN
	}

	now := time.Now()
	expiresAt := now.Add(s.cfg.TokenExpiry)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.Issuer,
			Subject:   string(domain.RoleLandlord),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Role: domain.RoleLandlord,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return nil, fmt.Errorf("auth.LoginLandlord: signing token: %w", err)
	}

	return &Session{AccessToken: signed, ExpiresAt: expiresAt}, nil
}

func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrUnauthorized
	}
	return claims, nil
}
