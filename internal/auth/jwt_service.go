package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"evrental/internal/model"
)

// TokenExpiry is the duration for which session tokens are valid. A revoked
// or deactivated account keeps a working token until it expires; the window
// is accepted, nothing re-checks the database per request.
const TokenExpiry = 24 * time.Hour

// Claims carries the identity baked into a session token.
type Claims struct {
	AccountID uuid.UUID  `json:"AccountID"`
	Email     string     `json:"Email"`
	FullName  string     `json:"FullName"`
	Role      model.Role `json:"Role"`
	StaffID   *uuid.UUID `json:"StaffID,omitempty"`
	RenterID  *uuid.UUID `json:"RenterID,omitempty"`
	jwt.RegisteredClaims
}

// TokenService handles session token generation and validation.
type TokenService struct {
	secret []byte
}

// NewTokenService creates a new token service with the given secret.
func NewTokenService(secret string) *TokenService {
	return &TokenService{
		secret: []byte(secret),
	}
}

// Issue signs a session token for the given identity.
func (s *TokenService) Issue(account *model.Account, staffID, renterID *uuid.UUID) (string, error) {
	claims := &Claims{
		AccountID: account.ID,
		Email:     account.Email,
		FullName:  account.FullName,
		Role:      account.Role,
		StaffID:   staffID,
		RenterID:  renterID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify validates a session token and returns the claims. Signature and
// expiry only; no database state is consulted.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
