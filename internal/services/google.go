package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"civicmatch_backend/internal/config"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const tokenInfoEndpoint = "https://oauth2.googleapis.com/tokeninfo"

// GoogleUserInfo is the subset of Google's token/userinfo payload we use.
type GoogleUserInfo struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified string `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
	Audience      string `json:"aud"`
}

// GoogleVerifier validates Google-issued credentials. The id-token path
// is used by SPAs that obtain a token client-side; the code path backs
// the server-side redirect flow.
type GoogleVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*GoogleUserInfo, error)
	AuthCodeURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*GoogleUserInfo, error)
}

type googleVerifier struct {
	clientID string
	oauthCfg *oauth2.Config
	client   *http.Client
}

func NewGoogleVerifier(cfg *config.Config) GoogleVerifier {
	return &googleVerifier{
		clientID: cfg.Google.ClientID,
		oauthCfg: &oauth2.Config{
			ClientID:     cfg.Google.ClientID,
			ClientSecret: cfg.Google.ClientSecret,
			RedirectURL:  cfg.Google.RedirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// VerifyIDToken asks Google's tokeninfo endpoint to validate the token and
// checks that it was issued for our client.
func (g *googleVerifier) VerifyIDToken(ctx context.Context, idToken string) (*GoogleUserInfo, error) {
	endpoint := tokenInfoEndpoint + "?id_token=" + url.QueryEscape(idToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tokeninfo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tokeninfo rejected token: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var info GoogleUserInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("tokeninfo response malformed: %w", err)
	}

	if g.clientID != "" && info.Audience != g.clientID {
		return nil, fmt.Errorf("token issued for another client")
	}
	if info.Email == "" {
		return nil, fmt.Errorf("token carries no email claim")
	}
	return &info, nil
}

func (g *googleVerifier) AuthCodeURL(state string) string {
	return g.oauthCfg.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// ExchangeCode trades an authorization code for tokens and fetches the
// user's profile with the resulting access token.
func (g *googleVerifier) ExchangeCode(ctx context.Context, code string) (*GoogleUserInfo, error) {
	token, err := g.oauthCfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("code exchange failed: %w", err)
	}

	client := g.oauthCfg.Client(ctx, token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v3/userinfo")
	if err != nil {
		return nil, fmt.Errorf("userinfo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo rejected request: status %d", resp.StatusCode)
	}

	var info GoogleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("userinfo response malformed: %w", err)
	}
	if info.Email == "" {
		return nil, fmt.Errorf("userinfo carries no email")
	}
	return &info, nil
}
