package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/microsoft"

	"github.com/recovvo-inc/recovvo/internal/application/user/usecases"
	"github.com/recovvo-inc/recovvo/internal/domain/user"
	sharedconfig "github.com/recovvo-inc/recovvo/internal/shared/config"
)

const graphMeURL = "https://graph.microsoft.com/v1.0/me"

type outlookUserInfo struct {
	ID                string `json:"id"`
	Mail              string `json:"mail"`
	UserPrincipalName string `json:"userPrincipalName"`
	GivenName         string `json:"givenName"`
	Surname           string `json:"surname"`
}

// OutlookOAuthService runs the Microsoft identity platform code flow with
// PKCE. An empty tenant ID falls back to the multi-tenant "common" endpoint.
type OutlookOAuthService struct {
	config *oauth2.Config
}

func NewOutlookOAuthService(cfg *sharedconfig.OutlookOAuthConfig) *OutlookOAuthService {
	tenantID := cfg.TenantID
	if tenantID == "" {
		tenantID = "common"
	}
	return &OutlookOAuthService{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{"openid", "profile", "email", "User.Read"},
			Endpoint:     microsoft.AzureADEndpoint(tenantID),
		},
	}
}

func (s *OutlookOAuthService) Provider() user.AuthProvider {
	return user.ProviderOutlook
}

func (s *OutlookOAuthService) AuthCodeURL(state, codeChallenge string) string {
	return s.config.AuthCodeURL(state,
		oauth2.SetAuthURLParam("code_challenge", codeChallenge),
		oauth2.SetAuthURLParam("code_challenge_method", "S256"),
	)
}

func (s *OutlookOAuthService) ExchangeProfile(ctx context.Context, code, codeVerifier string) (*usecases.OAuthProfile, error) {
	token, err := s.config.Exchange(ctx, code,
		oauth2.SetAuthURLParam("code_verifier", codeVerifier),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	info, err := fetchOutlookUserInfo(ctx, token.AccessToken)
	if err != nil {
		return nil, err
	}

	email := info.Mail
	if email == "" {
		email = info.UserPrincipalName
	}
	if email == "" {
		return nil, fmt.Errorf("microsoft account has no email address")
	}

	return &usecases.OAuthProfile{
		Email:     email,
		FirstName: info.GivenName,
		LastName:  info.Surname,
		Provider:  user.ProviderOutlook,
	}, nil
}

func fetchOutlookUserInfo(ctx context.Context, accessToken string) (*outlookUserInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, graphMeURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create userinfo request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	client := &http.Client{Timeout: httpClientTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("userinfo request failed with status %d: %s", resp.StatusCode, body)
	}

	var info outlookUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode userinfo response: %w", err)
	}
	return &info, nil
}
