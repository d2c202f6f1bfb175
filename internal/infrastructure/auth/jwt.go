package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the fields embedded in every issued token.
type Claims struct {
	UserID   uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret        []byte
	tokenExpHours int
}

func NewJWTService(secret string, tokenExpHours int) *JWTService {
	return &JWTService{
		secret:        []byte(secret),
		tokenExpHours: tokenExpHours,
	}
}

// Generate signs a token embedding the principal with the configured TTL.
// Returns the serialized token and its absolute expiry, which the caller
// records in the session ledger.
func (s *JWTService) Generate(userID uint, username, role string) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(time.Duration(s.tokenExpHours) * time.Hour)

	claims := &Claims{
		UserID:   userID,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, expiresAt, nil
}

// Verify checks the signature, structure and embedded expiry of a token.
// It does not consult the session ledger; revocation is the caller's check.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// Hash returns the one-way digest of a serialized token, as recorded in the
// session ledger.
func (s *JWTService) Hash(token string) string {
	return HashToken(token)
}

// TokenExpHours returns the configured token lifetime in hours.
func (s *JWTService) TokenExpHours() int {
	return s.tokenExpHours
}
