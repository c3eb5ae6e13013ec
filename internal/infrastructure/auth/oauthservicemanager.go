package auth

import (
	"fmt"

	"github.com/recovvo-inc/recovvo/internal/application/user/usecases"
	"github.com/recovvo-inc/recovvo/internal/shared/config"
)

// OAuthServiceManager resolves the configured OAuth service for a provider
// name. Providers with missing credentials are not registered.
type OAuthServiceManager struct {
	services map[string]usecases.OAuthService
}

func NewOAuthServiceManager(cfg *config.OAuthConfig) *OAuthServiceManager {
	m := &OAuthServiceManager{services: make(map[string]usecases.OAuthService)}
	if cfg.Google.ClientID != "" {
		svc := NewGoogleOAuthService(&cfg.Google)
		m.services[string(svc.Provider())] = svc
	}
	if cfg.Outlook.ClientID != "" {
		svc := NewOutlookOAuthService(&cfg.Outlook)
		m.services[string(svc.Provider())] = svc
	}
	return m
}

func (m *OAuthServiceManager) Get(provider string) (usecases.OAuthService, error) {
	svc, ok := m.services[provider]
	if !ok {
		return nil, fmt.Errorf("oauth provider not configured: %s", provider)
	}
	return svc, nil
}
