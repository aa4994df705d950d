package auth

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// Identity is the authenticated caller of one request. It only comes out of
// Authenticator.Validate.
type Identity struct {
	StudentID int64
	IsAdmin   bool
	ExpiresAt time.Time
}

func (i Identity) IsRoot() bool {
	return i.StudentID == RootID && i.IsAdmin
}

type identityKey struct{}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}

type Authenticator struct {
	secret string
	now    func() time.Time
}

func NewAuthenticator(secret string) *Authenticator {
	return &Authenticator{secret: secret, now: time.Now}
}

// WithClock returns a copy that reads the current time from now.
func (a *Authenticator) WithClock(now func() time.Time) *Authenticator {
	return &Authenticator{secret: a.secret, now: now}
}

func (a *Authenticator) Authenticate(r *http.Request) (Identity, error) {
	token := TokenFromHeader(r.Header.Get("Authorization"))
	if token == "" {
		return Identity{}, ErrUnauthenticated
	}
	return a.Validate(token)
}

// Validate decodes token and checks that it has not expired. A token is
// valid strictly before its expiry instant.
func (a *Authenticator) Validate(token string) (Identity, error) {
	claims, err := Decode(token, a.secret)
	if err != nil {
		return Identity{}, err
	}

	expiry := claims.Expiry()
	if !a.now().Before(expiry) {
		return Identity{}, ErrExpired
	}

	return Identity{
		StudentID: claims.StudentID,
		IsAdmin:   claims.Admin,
		ExpiresAt: expiry,
	}, nil
}

// TokenFromHeader strips an optional "Bearer" scheme from an Authorization
// header value.
func TokenFromHeader(header string) string {
	header = strings.TrimSpace(header)
	if strings.EqualFold(header, "bearer") {
		return ""
	}
	if len(header) >= 7 && strings.EqualFold(header[:7], "bearer ") {
		header = strings.TrimSpace(header[7:])
	}
	return header
}
