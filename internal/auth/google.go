package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"tailormake-backend/internal/shared/server/respond"
	"tailormake-backend/internal/shared/session"
	"tailormake-backend/internal/users"
)

// GoogleWebFlow handles the browser-redirect OAuth flow for clients that
// cannot obtain an ID token themselves. It ends in the same login-or-create
// path as POST /auth/google.
type GoogleWebFlow struct {
	oauthConfig *oauth2.Config
	uiRedirect  string
	env         string
	users       *users.Service
	codec       *session.Codec
	stateTTL    time.Duration
	stateStore  *stateStore
}

func NewGoogleWebFlow(clientID, clientSecret, redirectURL, uiRedirect, env string, usersSvc *users.Service, codec *session.Codec) *GoogleWebFlow {
	return &GoogleWebFlow{
		oauthConfig: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
		uiRedirect: uiRedirect,
		env:        env,
		users:      usersSvc,
		codec:      codec,
		stateTTL:   5 * time.Minute,
		stateStore: newStateStore(),
	}
}

func (s *GoogleWebFlow) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/auth/google/start", s.start)
	rg.GET("/auth/google/callback", s.callback)
}

func (s *GoogleWebFlow) start(c *gin.Context) {
	if s.oauthConfig.ClientID == "" || s.oauthConfig.ClientSecret == "" || s.oauthConfig.RedirectURL == "" {
		respond.Error(c, http.StatusInternalServerError, "Google auth not configured")
		return
	}

	state := uuid.NewString()
	s.stateStore.put(state, time.Now().Add(s.stateTTL))

	url := s.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline)
	c.Redirect(http.StatusFound, url)
}

func (s *GoogleWebFlow) callback(c *gin.Context) {
	state := c.Query("state")
	code := c.Query("code")
	if state == "" || code == "" {
		respond.Error(c, http.StatusBadRequest, "Missing state or code")
		return
	}

	if !s.stateStore.consume(state) {
		respond.Error(c, http.StatusBadRequest, "Invalid or expired state")
		return
	}

	ctx := c.Request.Context()
	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "Failed to exchange code")
		return
	}

	info, err := s.fetchUserInfo(ctx, token)
	if err != nil || info.Sub == "" || info.Email == "" {
		respond.Error(c, http.StatusBadGateway, "Failed to fetch user profile")
		return
	}

	user, _, err := s.users.LoginOrCreate(ctx, info.Sub, info.Email)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Failed to log in")
		return
	}

	sessionToken, err := s.codec.Issue(user.ID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Failed to issue session")
		return
	}

	setSessionCookie(c, sessionToken, s.env)

	redirect := s.uiRedirect
	if redirect == "" {
		redirect = "/"
	}
	c.Redirect(http.StatusFound, redirect)
}

type googleUserInfo struct {
	Sub   string `json:"sub"`
	ID    string `json:"id"`
	Email string `json:"email"`
}

func (s *GoogleWebFlow) fetchUserInfo(ctx context.Context, token *oauth2.Token) (googleUserInfo, error) {
	client := s.oauthConfig.Client(ctx, token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return googleUserInfo{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return googleUserInfo{}, fmt.Errorf("userinfo status %d", resp.StatusCode)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return googleUserInfo{}, err
	}

	// Some responses use "id" instead of "sub".
	if info.Sub == "" {
		info.Sub = info.ID
	}
	return info, nil
}

type stateStore struct {
	items map[string]time.Time
	mu    sync.Mutex
}

func newStateStore() *stateStore {
	return &stateStore{items: make(map[string]time.Time)}
}

// put records a state nonce and sweeps entries whose TTL has lapsed, so
// abandoned redirects don't pile up.
func (s *stateStore) put(state string, exp time.Time) {
	now := time.Now()
	s.mu.Lock()
	for k, e := range s.items {
		if now.After(e) {
			delete(s.items, k)
		}
	}
	s.items[state] = exp
	s.mu.Unlock()
}

func (s *stateStore) consume(state string) bool {
	s.mu.Lock()
	exp, ok := s.items[state]
	if ok {
		delete(s.items, state)
	}
	s.mu.Unlock()
	if !ok {
		return false
	}
	return !time.Now().After(exp)
}
