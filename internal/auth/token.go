package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrUnauthenticated  = errors.New("not authenticated")
	ErrMalformed        = fmt.Errorf("%w: malformed token", ErrUnauthenticated)
	ErrInvalidSignature = fmt.Errorf("%w: invalid token signature", ErrUnauthenticated)
	ErrExpired          = fmt.Errorf("%w: token expired", ErrUnauthenticated)
)

// RootID is the subject id of the bootstrap identity. No student row has it.
const RootID int64 = 0

type Claims struct {
	StudentID int64 `json:"student_id"`
	Admin     bool  `json:"admin"`
	jwt.RegisteredClaims
}

// NewClaims builds the claims of a regular login, expiring ttl after issuedAt.
// tokenID is carried as jti so a denylist can be keyed on it later.
func NewClaims(studentID int64, admin bool, tokenID string, issuedAt time.Time, ttl time.Duration) Claims {
	return Claims{
		StudentID: studentID,
		Admin:     admin,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
		},
	}
}

func RootClaims(tokenID string, issuedAt time.Time, ttl time.Duration) Claims {
	return NewClaims(RootID, true, tokenID, issuedAt, ttl)
}

func (c Claims) Expiry() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.Time
}

// Encode signs claims with HS256. The output depends only on claims and secret.
func Encode(claims Claims, secret string) (string, error) {
	if secret == "" {
		return "", errors.New("empty signing secret")
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return tokenString, nil
}

// Decode verifies the signature and returns the claims. Expiry is not checked
// here; see Authenticator.
func Decode(tokenString, secret string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrMalformed
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithStrictDecoding(),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
			return nil, ErrInvalidSignature
		default:
			return nil, ErrMalformed
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrMalformed
	}
	if claims.ExpiresAt == nil {
		return nil, ErrMalformed
	}
	return claims, nil
}
