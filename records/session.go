// Copyright 2025 Raywall Malheiros de Souza
// Licensed under the Mozilla Public License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.mozilla.org/en-US/MPL/2.0/
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package records

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/raywall/cloud-data-helpers/pkg/metrics"
	"github.com/rs/zerolog"
)

// DefaultTimeout é o timeout aplicado a cada requisição quando nenhum
// valor é informado em CallOptions.
const DefaultTimeout = 60 * time.Second

// requestIDHeader identifica cada requisição individualmente no servidor.
const requestIDHeader = "x-ms-client-request-id"

// Record representa um registro da coleção remota: um mapa de nome de campo
// para valor, opaco para a Session (nenhuma validação ou transformação é
// aplicada ao conteúdo).
type Record map[string]interface{}

// CallOptions enumera as opções suportadas por chamada.
type CallOptions struct {
	// Timeout limita a duração de cada requisição HTTP da chamada.
	// Zero aplica DefaultTimeout.
	Timeout time.Duration
	// Params são os query parameters do primeiro GET. Links de continuação
	// já codificam a consulta completa, portanto Params é ignorado nas
	// páginas seguintes.
	Params url.Values
	// Headers adicionais enviados em toda requisição da chamada.
	Headers map[string]string
}

// pageResponse é o envelope de listagem retornado pelo serviço.
type pageResponse struct {
	Value    []Record `json:"value"`
	NextLink string   `json:"@odata.nextLink"`
}

// Session mantém a URL base e a credencial bearer do serviço remoto.
//
// Ambas são fixadas na construção e imutáveis durante a vida da Session;
// não há estado mutável além do que o transporte subjacente mantém, então
// chamadas concorrentes são seguras.
type Session struct {
	baseURL     string
	accessToken string
	client      *http.Client
	logger      zerolog.Logger
	metrics     metrics.Provider
}

// SessionOption customiza a construção da Session.
type SessionOption func(*Session)

// WithHTTPClient substitui o cliente HTTP padrão.
func WithHTTPClient(client *http.Client) SessionOption {
	return func(s *Session) {
		s.client = client
	}
}

// WithLogger injeta o logger zerolog usado pela Session.
func WithLogger(logger zerolog.Logger) SessionOption {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithMetrics injeta o provedor de métricas (contagem e duração por operação).
func WithMetrics(provider metrics.Provider) SessionOption {
	return func(s *Session) {
		s.metrics = provider
	}
}

// NewSession cria uma Session para o serviço remoto.
//
// Parâmetros:
//
//	baseURL: URL base do serviço (ex: "https://org.example.com/api/data/v9.2").
//	accessToken: credencial bearer apresentada em toda requisição.
//
// Retorna erro de validação se baseURL ou accessToken estiverem vazios.
func NewSession(baseURL, accessToken string, opts ...SessionOption) (*Session, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("%w: base URL não informada", ErrInvalidInput)
	}
	if accessToken == "" {
		return nil, fmt.Errorf("%w: access token não informado", ErrInvalidInput)
	}

	s := &Session{
		baseURL:     strings.TrimRight(baseURL, "/"),
		accessToken: accessToken,
		client:      &http.Client{},
		logger:      zerolog.Nop(),
		metrics:     &metrics.NoopProvider{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Get lê todos os registros de uma coleção, seguindo os links de
// continuação até o servidor não retornar mais nenhum.
//
// O resultado é a concatenação, na ordem retornada pelo servidor, do campo
// "value" de cada página visitada. Se qualquer requisição da cadeia falhar
// (erro de rede, timeout ou status não-2xx), a chamada inteira falha e as
// páginas já lidas são descartadas.
func (s *Session) Get(ctx context.Context, endpoint string, opts *CallOptions) ([]Record, error) {
	o := normalizeOptions(opts)
	start := time.Now()

	target := s.baseURL + "/" + strings.TrimLeft(endpoint, "/")
	if len(o.Params) > 0 {
		target += "?" + o.Params.Encode()
	}

	var collected []Record
	pages := 0
	for target != "" {
		page, err := s.fetchPage(ctx, target, o)
		if err != nil {
			return nil, err
		}
		collected = append(collected, page.Value...)
		// O link de continuação já codifica a consulta completa
		target = page.NextLink
		pages++
	}

	s.observe("get", endpoint, start)
	s.logger.Debug().
		Str("endpoint", endpoint).
		Int("pages", pages).
		Int("records", len(collected)).
		Msg("coleção lida")

	return collected, nil
}

// fetchPage executa um único GET autenticado e decodifica o envelope da página.
func (s *Session) fetchPage(ctx context.Context, target string, o CallOptions) (*pageResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, o.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao montar requisição GET: %w", err)
	}
	s.setHeaders(req, o)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro na requisição GET %s: %w", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("GET %s retornou status %d", target, resp.StatusCode)
	}

	var page pageResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta de %s: %w", target, err)
	}
	return &page, nil
}

// Post cria um registro na coleção e retorna o identificador gerado.
//
// Um payload vazio falha com erro de validação antes de qualquer I/O de
// rede. O identificador é extraído do header "OData-EntityId"
// (".../colecao(<id>)") ou, na ausência dele, do campo "id" do corpo da
// resposta. Quando nenhum identificador é descoberto, retorna string vazia
// sem erro: o registro foi criado, só não sabemos o id.
func (s *Session) Post(ctx context.Context, endpoint string, data Record, opts *CallOptions) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: payload vazio para criação de registro", ErrInvalidInput)
	}

	o := normalizeOptions(opts)
	start := time.Now()

	body, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("erro ao serializar payload: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, o.Timeout)
	defer cancel()

	target := s.baseURL + "/" + strings.TrimLeft(endpoint, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("erro ao montar requisição POST: %w", err)
	}
	s.setHeaders(req, o)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("erro na requisição POST %s: %w", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("POST %s retornou status %d", target, resp.StatusCode)
	}

	s.observe("post", endpoint, start)
	return extractRecordID(resp), nil
}

// extractRecordID descobre o identificador do registro recém-criado.
func extractRecordID(resp *http.Response) string {
	if entity := resp.Header.Get("OData-EntityId"); entity != "" {
		if open := strings.LastIndex(entity, "("); open >= 0 && strings.HasSuffix(entity, ")") {
			return entity[open+1 : len(entity)-1]
		}
		return entity
	}

	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		if id, ok := body["id"].(string); ok {
			return id
		}
	}
	return ""
}

// Delete remove um registro da coleção.
//
// Retorna true para status 2xx e false para qualquer outro status — a
// rejeição pelo servidor não é um erro, diferente da falha de transporte
// (conexão recusada, timeout), que é propagada.
func (s *Session) Delete(ctx context.Context, endpoint, recordID string, opts *CallOptions) (bool, error) {
	if recordID == "" {
		return false, fmt.Errorf("%w: record ID não informado", ErrInvalidInput)
	}

	o := normalizeOptions(opts)
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, o.Timeout)
	defer cancel()

	target := s.baseURL + "/" + strings.TrimLeft(endpoint, "/") + "/" + recordID
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, target, nil)
	if err != nil {
		return false, fmt.Errorf("erro ao montar requisição DELETE: %w", err)
	}
	s.setHeaders(req, o)

	resp, err := s.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("erro na requisição DELETE %s: %w", target, err)
	}
	defer resp.Body.Close()

	s.observe("delete", endpoint, start)
	return resp.StatusCode >= 200 && resp.StatusCode < 300, nil
}

// setHeaders aplica a credencial bearer e os headers padrão da Session.
func (s *Session) setHeaders(req *http.Request, o CallOptions) {
	req.Header.Set("Authorization", "Bearer "+s.accessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, uuid.NewString())
	for key, value := range o.Headers {
		req.Header.Set(key, value)
	}
}

func (s *Session) observe(operation, endpoint string, start time.Time) {
	tags := []string{"operation:" + operation, "endpoint:" + endpoint}
	_ = s.metrics.Count("records.request", 1, tags)
	_ = s.metrics.Histogram("records.request.duration_ms", float64(time.Since(start).Milliseconds()), tags)
}

func normalizeOptions(opts *CallOptions) CallOptions {
	if opts == nil {
		return CallOptions{Timeout: DefaultTimeout}
	}
	o := *opts
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	return o
}
