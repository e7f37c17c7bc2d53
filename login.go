package xlautomaten

import (
	"context"
	"net/http"
)

// LoginResponse is the result of exchanging credentials for a token.
type LoginResponse struct {
	// Token is the bearer token for all other operations.
	Token string
	// TokenType is always "bearer".
	TokenType string
	// ExpiresIn is the token lifetime in seconds, usually one hour.
	ExpiresIn int
}

type apiLoginResponse struct {
	Token     *string `json:"token" validate:"required"`
	TokenType *string `json:"token_type" validate:"required,eq=bearer"`
	ExpiresIn *int    `json:"expires_in" validate:"required"`
}

// Login exchanges the account credentials for a bearer token. The
// returned token must be bound to a client via WithToken before calling
// any other operation.
//
//	resp, err := client.Login(ctx, "your@email.com", "your-password")
//	if err != nil {
//		return err
//	}
//	client = client.WithToken(resp.Token)
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	body := map[string]any{
		"email":    email,
		"password": password,
	}

	var dto apiLoginResponse
	if err := c.do(ctx, http.MethodPost, "login", body, &dto); err != nil {
		return nil, err
	}
	return &LoginResponse{
		Token:     deref(dto.Token),
		TokenType: deref(dto.TokenType),
		ExpiresIn: deref(dto.ExpiresIn),
	}, nil
}
