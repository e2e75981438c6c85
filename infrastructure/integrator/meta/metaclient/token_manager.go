package metaclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-autopilot-api/internal/config"
)

var ErrReauthorizationRequired = errors.New("meta token expired and requires manual reauthorization")

// TokenSource fornece o token de acesso corrente para o client
type TokenSource interface {
	AccessToken() string
	EnsureValidToken(ctx context.Context) error
	RefreshToken(ctx context.Context) error
}

// StaticToken é um TokenSource fixo, sem renovação
type StaticToken string

func (t StaticToken) AccessToken() string                    { return string(t) }
func (t StaticToken) EnsureValidToken(context.Context) error { return nil }
func (t StaticToken) RefreshToken(context.Context) error     { return nil }

// TokenManager gerencia o token de longa duração da API do Meta
type TokenManager struct {
	apiURL     string
	appID      string
	appSecret  string
	httpClient *http.Client

	mu        sync.RWMutex
	token     string
	expiresAt time.Time

	stopRefresh chan struct{}
	stopOnce    sync.Once
	now         func() time.Time
}

func NewTokenManager(cfg *config.Config) *TokenManager {
	token := cfg.Meta.LongLivedToken
	if token == "" {
		token = cfg.Meta.AccessToken
	}

	return &TokenManager{
		apiURL:      cfg.Meta.URL,
		appID:       cfg.Meta.AppID,
		appSecret:   cfg.Meta.AppSecret,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		token:       token,
		expiresAt:   cfg.Meta.TokenExpiresAt,
		stopRefresh: make(chan struct{}),
		now:         time.Now,
	}
}

func (tm *TokenManager) AccessToken() string {
	tm.mu.RLock()
	defer tm.mu.RUnlock()
	return tm.token
}

func (tm *TokenManager) ExpiresAt() time.Time {
	tm.mu.RLock()
	defer tm.mu.RUnlock()
	return tm.expiresAt
}

// StartAutoRefresh renova o token periodicamente até StopAutoRefresh
func (tm *TokenManager) StartAutoRefresh(ctx context.Context) {
	if err := tm.RefreshToken(ctx); err != nil {
		logrus.Errorf("Erro ao iniciar o token: %v", err)
	}

	// Renovação diária um pouco antes de 24h
	refreshInterval := 23 * time.Hour
	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			logrus.Info("Iniciando renovação periódica do token da Meta")
			if err := tm.RefreshToken(ctx); err != nil {
				logrus.Errorf("Erro na renovação periódica do token: %v", err)
				ticker.Reset(1 * time.Hour)
			} else {
				logrus.Info("Renovação periódica do token concluída com sucesso")
				ticker.Reset(refreshInterval)
			}
		case <-ctx.Done():
			return
		case <-tm.stopRefresh:
			logrus.Info("Encerrando goroutine de renovação periódica do token")
			return
		}
	}
}

func (tm *TokenManager) StopAutoRefresh() {
	tm.stopOnce.Do(func() { close(tm.stopRefresh) })
}

// EnsureValidToken renova o token se ele expira em menos de 24 horas.
// Expiração desconhecida (zero) não dispara renovação.
func (tm *TokenManager) EnsureValidToken(ctx context.Context) error {
	tm.mu.RLock()
	token, expiresAt := tm.token, tm.expiresAt
	tm.mu.RUnlock()

	if token == "" {
		return fmt.Errorf("token de acesso do Meta não configurado")
	}

	if !expiresAt.IsZero() && expiresAt.Sub(tm.now()) < 24*time.Hour {
		logrus.Info("Token expira em menos de 24 horas. Renovando proativamente...")
		return tm.RefreshToken(ctx)
	}

	return nil
}

// RefreshToken troca o token atual por um novo token de longa duração
func (tm *TokenManager) RefreshToken(ctx context.Context) error {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	tokenResponse, err := ExchangeLongLivedToken(ctx, tm.httpClient, tm.apiURL, tm.token, tm.appID, tm.appSecret)
	if err != nil {
		if containsTokenExpirationMessage(err.Error()) {
			logrus.Error("O token de acesso expirou e não pode ser renovado automaticamente. É necessário reautorizar")
			return fmt.Errorf("%w: %v", ErrReauthorizationRequired, err)
		}
		return fmt.Errorf("erro ao obter novo token de longa duração: %w", err)
	}

	if tokenResponse.AccessToken == tm.token {
		logrus.Info("Token renovado, mas não mudou. Isso pode indicar um problema na API da Meta")
	}

	tm.token = tokenResponse.AccessToken
	tm.expiresAt = CalculateTokenExpiration(tm.now(), tokenResponse.ExpiresIn)

	logrus.Infof("Token de longa duração atualizado. Expira em: %s", tm.expiresAt.Format(time.RFC3339))

	return nil
}

func containsTokenExpirationMessage(message string) bool {
	return strings.Contains(message, "Error validating access token") ||
		strings.Contains(message, "Session has expired") ||
		strings.Contains(message, "The session has been invalidated")
}
