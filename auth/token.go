package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var (
	// ErrConfigNotFound indica que nenhuma configuração foi registrada com o id informado.
	ErrConfigNotFound = errors.New("auth: token configuration not found")
	// ErrTokenNotFound indica que a resposta do STS não trouxe um access_token.
	ErrTokenNotFound = errors.New("auth: access_token not present in response")
)

// TokenConfig define a configuração de um serviço STS (fluxo client-credentials).
type TokenConfig struct {
	GrantType    string
	ClientID     string
	ClientSecret string
	Scope        string
	Host         string
}

// TokenService centraliza a obtenção de tokens bearer usados pelas Sessions
// do pacote records.
type TokenService struct {
	Configurations map[string]TokenConfig
	client         *http.Client
}

// NewTokenService cria um novo serviço de token STS.
func NewTokenService() *TokenService {
	return &TokenService{
		Configurations: make(map[string]TokenConfig),
		client:         &http.Client{Timeout: 30 * time.Second},
	}
}

// GetToken obtém um access token para a configuração identificada por tokenID.
//
// A requisição é um POST form-urlencoded no padrão client-credentials; o
// token é extraído do campo "access_token" da resposta JSON.
func (t *TokenService) GetToken(ctx context.Context, tokenID string) (string, error) {
	cfg, exists := t.Configurations[tokenID]
	if !exists {
		return "", fmt.Errorf("%w: %s", ErrConfigNotFound, tokenID)
	}

	formData := url.Values{}
	formData.Set("grant_type", cfg.GrantType)
	formData.Set("client_id", cfg.ClientID)
	formData.Set("client_secret", cfg.ClientSecret)
	if cfg.Scope != "" {
		formData.Set("scope", cfg.Scope)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.Host, strings.NewReader(formData.Encode()))
	if err != nil {
		return "", fmt.Errorf("erro ao montar requisição de token: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("erro na requisição de token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("STS retornou status %d", resp.StatusCode)
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("erro ao ler resposta do STS: %w", err)
	}

	var response map[string]interface{}
	if err := json.Unmarshal(bodyBytes, &response); err != nil {
		return "", fmt.Errorf("erro ao decodificar resposta do STS: %w", err)
	}

	if accessToken, ok := response["access_token"].(string); ok && accessToken != "" {
		return accessToken, nil
	}
	return "", ErrTokenNotFound
}
