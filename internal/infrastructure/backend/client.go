// Package backend implementa el cliente tipado del backend de comercio.
// Usa net/http de la librería estándar, igual que los demás clientes
// salientes del equipo; no requiere SDK.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Comercio-admin/internal/application/ports"
	"github.com/jhoicas/Comercio-admin/internal/domain"
)

// Verificar en tiempo de compilación que Client implementa CommerceBackend.
var _ ports.CommerceBackend = (*Client)(nil)

const maxBodyBytes = 1 << 20 // 1 MiB por respuesta; las colecciones admin son pequeñas

// Config parámetros del cliente.
type Config struct {
	BaseURL       string        // ej. http://localhost:5000
	SessionCookie string        // nombre de la cookie de sesión que se reenvía (default "session")
	Timeout       time.Duration // timeout de red por viaje
}

// Client cliente HTTP del backend. Una llamada = un viaje; sin reintentos:
// ante fallo el usuario vuelve a disparar la acción.
type Client struct {
	baseURL    string
	cookieName string
	httpClient *http.Client
}

// New construye el cliente.
func New(cfg Config) *Client {
	cookie := cfg.SessionCookie
	if cookie == "" {
		cookie = "session"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		cookieName: cookie,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// statusMessage cuerpo {message} con el que el backend describe errores y
// confirma mutaciones.
type statusMessage struct {
	Message string `json:"message"`
}

// do ejecuta un viaje completo: request, clasificación de errores y, si out
// no es nil, decodificación del cuerpo JSON.
func (c *Client) do(ctx context.Context, method, path string, payload any, out any, resource string) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("backend: serializar request %s: %w", resource, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("backend: crear request %s: %w", resource, err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token := ports.SessionFrom(ctx); token != "" {
		req.AddCookie(&http.Cookie{Name: c.cookieName, Value: token})
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &domain.TransportError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return &domain.TransportError{Err: err}
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		// Señal estructural: el llamador redirige a login, nunca reintenta.
		return domain.ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrNotFound
	case resp.StatusCode >= 400:
		var sm statusMessage
		if jsonErr := json.Unmarshal(raw, &sm); jsonErr == nil && sm.Message != "" {
			return &domain.ServerError{StatusCode: resp.StatusCode, Message: sm.Message}
		}
		return &domain.ServerError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &domain.DecodeError{Resource: resource, Err: err}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any, resource string) error {
	return c.do(ctx, http.MethodGet, path, nil, out, resource)
}
