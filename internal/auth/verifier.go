package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ErrInvalidCredential is returned when an identity token fails verification.
var ErrInvalidCredential = errInvalidCredential{}

type errInvalidCredential struct{}

func (errInvalidCredential) Error() string { return "invalid credential" }

// Identity is the verified subject extracted from an external identity token.
type Identity struct {
	Subject string
	Email   string
}

// TokenVerifier validates an opaque identity token against the provider.
// Verification is network-dependent and is not retried; any failure maps to
// ErrInvalidCredential at the API boundary.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (Identity, error)
}

const googleTokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"

// GoogleVerifier validates Google ID tokens via the tokeninfo endpoint and
// enforces that the token was minted for our client ID.
type GoogleVerifier struct {
	ClientID string
	Client   *http.Client
	BaseURL  string
}

func NewGoogleVerifier(clientID string) *GoogleVerifier {
	return &GoogleVerifier{
		ClientID: clientID,
		Client:   &http.Client{Timeout: 10 * time.Second},
		BaseURL:  googleTokenInfoURL,
	}
}

type tokenInfoResponse struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified string `json:"email_verified"`
	Audience      string `json:"aud"`
}

func (v *GoogleVerifier) Verify(ctx context.Context, token string) (Identity, error) {
	if token == "" {
		return Identity{}, ErrInvalidCredential
	}

	endpoint := v.BaseURL
	if endpoint == "" {
		endpoint = googleTokenInfoURL
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?id_token="+url.QueryEscape(token), nil)
	if err != nil {
		return Identity{}, err
	}

	client := v.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return Identity{}, fmt.Errorf("verify token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Identity{}, ErrInvalidCredential
	}

	var info tokenInfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return Identity{}, ErrInvalidCredential
	}
	if info.Sub == "" || info.Email == "" {
		return Identity{}, ErrInvalidCredential
	}
	if v.ClientID != "" && info.Audience != v.ClientID {
		return Identity{}, ErrInvalidCredential
	}

	return Identity{Subject: info.Sub, Email: info.Email}, nil
}

var _ TokenVerifier = (*GoogleVerifier)(nil)
