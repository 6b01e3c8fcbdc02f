package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultTimeout = 30 * time.Second
	// DefaultMaxBody alcanza para el export completo del dataset.
	DefaultMaxBody = 64 << 20
)

// Client envuelve *http.Client para descargar archivos estáticos (p.ej. el CSV).
type Client struct {
	HTTP    *http.Client
	MaxBody int64
}

// New crea un Client con timeout razonable.
func New(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		HTTP:    &http.Client{Timeout: timeout},
		MaxBody: DefaultMaxBody,
	}
}

// HTTPError representa una respuesta no-2xx.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("http error: status=%d", e.StatusCode)
	}
	return fmt.Sprintf("http error: status=%d body=%s", e.StatusCode, e.Body)
}

// Fetch hace GET y devuelve el body completo (hasta MaxBody).
// Retorna *HTTPError si el status no es 2xx.
func (c *Client) Fetch(ctx context.Context, rawURL string, headers map[string]string) ([]byte, error) {
	if c == nil || c.HTTP == nil {
		return nil, errors.New("httpclient: nil client")
	}

	rawURL = strings.TrimSpace(rawURL)
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return nil, fmt.Errorf("httpclient: absolute url required, got %q", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("httpclient: new request: %w", err)
	}
	for k, v := range headers {
		if strings.TrimSpace(k) == "" {
			continue
		}
		req.Header.Set(k, v)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: do request: %w", err)
	}
	defer resp.Body.Close()

	max := c.MaxBody
	if max <= 0 {
		max = DefaultMaxBody
	}
	// leemos uno más para detectar truncado
	raw, err := io.ReadAll(io.LimitReader(resp.Body, max+1))
	if err != nil {
		return nil, fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body := string(raw)
		if len(body) > 512 {
			body = body[:512]
		}
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(body)}
	}
	if int64(len(raw)) > max {
		return nil, fmt.Errorf("httpclient: body exceeds %d bytes", max)
	}
	return raw, nil
}
