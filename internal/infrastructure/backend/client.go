package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/asesor-cotizaciones/internal/application/dto"
	"github.com/jhoicas/asesor-cotizaciones/internal/application/ports"
	"github.com/jhoicas/asesor-cotizaciones/internal/domain"
	"github.com/jhoicas/asesor-cotizaciones/internal/domain/entity"
)

// Verificar en tiempo de compilación que Client implementa los puertos.
var (
	_ ports.AuthGateway  = (*Client)(nil)
	_ ports.QuoteGateway = (*Client)(nil)
)

const maxBodyBytes = 8 << 20 // las imágenes de producto viajan en base64

// Client adaptador REST del backend de cotizaciones.
// Usa net/http de la librería estándar; no hay SDK para este backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient construye el cliente. timeout 0 = sin límite (las peticiones no expiran).
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Login POST /auth/login. El cuerpo de una respuesta 2xx es el token crudo.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body, err := json.Marshal(dto.LoginRequest{Email: email, Password: password})
	if err != nil {
		return "", fmt.Errorf("backend: serializar login: %w", err)
	}
	raw, err := c.do(ctx, http.MethodPost, "/auth/login", "", body)
	if err != nil {
		return "", err
	}
	return rawToken(raw), nil
}

// ListQuotes GET /quote/.
func (c *Client) ListQuotes(ctx context.Context, token string) ([]entity.Quote, error) {
	raw, err := c.do(ctx, http.MethodGet, "/quote/", token, nil)
	if err != nil {
		return nil, err
	}
	var payload []quotePayload
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &payload); err != nil {
			return nil, fmt.Errorf("backend: deserializar cotizaciones: %w", err)
		}
	}
	out := make([]entity.Quote, 0, len(payload))
	for _, p := range payload {
		out = append(out, p.toEntity())
	}
	return out, nil
}

// ChangeState PUT /quote/{id}/state con {"state": n}. El cuerpo de la respuesta no se usa.
func (c *Client) ChangeState(ctx context.Context, token string, id int64, state entity.QuoteState) error {
	body, err := json.Marshal(dto.ChangeStateRequest{State: int(state)})
	if err != nil {
		return fmt.Errorf("backend: serializar estado: %w", err)
	}
	_, err = c.do(ctx, http.MethodPut, "/quote/"+strconv.FormatInt(id, 10)+"/state", token, body)
	return err
}

// GetProductByCode GET /product/code/{code}.
func (c *Client) GetProductByCode(ctx context.Context, token, code string) (*entity.Product, error) {
	raw, err := c.do(ctx, http.MethodGet, "/product/code/"+url.PathEscape(code), token, nil)
	if err != nil {
		return nil, err
	}
	var payload productPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("backend: deserializar producto: %w", err)
	}
	p := payload.toEntity()
	return &p, nil
}

// do ejecuta la petición y devuelve el cuerpo de una respuesta 2xx.
// Errores de red -> domain.ErrBackendUnreached; respuestas no 2xx -> *domain.BackendError.
func (c *Client) do(ctx context.Context, method, path, token string, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("backend: crear request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json, text/plain")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", domain.ErrBackendUnreached, method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: leer respuesta: %v", domain.ErrBackendUnreached, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.BackendError{StatusCode: resp.StatusCode, Body: errorMessage(raw)}
	}
	return raw, nil
}

// errorMessage extrae el mensaje del cuerpo de error: campo message/error, string JSON o texto plano.
func errorMessage(raw []byte) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return ""
	}
	switch trimmed[0] {
	case '{':
		var obj struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		if err := json.Unmarshal(trimmed, &obj); err == nil {
			if obj.Message != "" {
				return obj.Message
			}
			return obj.Error
		}
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err == nil {
			return s
		}
	}
	return string(trimmed)
}

// rawToken acepta el token como texto plano o como string JSON.
func rawToken(raw []byte) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err == nil {
			return strings.TrimSpace(s)
		}
	}
	return string(trimmed)
}
