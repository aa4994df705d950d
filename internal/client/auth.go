package client

import (
	"context"
	"net/http"

	"schoolfeedback/internal/models"
)

// Session is the result of a login. SelfID is 0 for the root identity, which
// has no student row.
type Session struct {
	Token  string
	SelfID int64
}

// Login exchanges credentials for a token, keeps it on the client and looks
// up the caller's own id.
func (c *Client) Login(ctx context.Context, email, password string) (Session, error) {
	var resp struct {
		Token string `json:"token"`
	}
	err := c.do(ctx, http.MethodPost, "/token/generate", models.LoginStudent{Email: email, Password: password}, &resp)
	if err != nil {
		return Session{}, err
	}
	c.token = resp.Token

	self, err := c.GetSelf(ctx)
	switch {
	case IsStatus(err, http.StatusNotFound):
		return Session{Token: resp.Token}, nil
	case err != nil:
		return Session{}, err
	}
	return Session{Token: resp.Token, SelfID: self.ID}, nil
}

// ValidateToken returns nil when the server accepts token.
func (c *Client) ValidateToken(ctx context.Context, token string) error {
	resp, err := c.send(ctx, http.MethodPost, "/token/validate", models.ValidateToken{Token: token})
	if err != nil {
		return err
	}
	return resp.Body.Close()
}

type Health struct {
	Status string `json:"status"`
	Tables int    `json:"tables"`
}

func (c *Client) Health(ctx context.Context) (Health, error) {
	var health Health
	err := c.do(ctx, http.MethodGet, "/health", nil, &health)
	return health, err
}
