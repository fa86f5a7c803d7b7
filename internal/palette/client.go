package palette

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/phyten/palettex/internal/colorutil"
)

const (
	DefaultBaseURL = "http://localhost:8080/api"
	DefaultTimeout = 10 * time.Second

	maxErrorBody = 4 << 10
)

// Client は配色 API の最小ラッパーです。
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

type Option func(*Client)

// WithHTTPClient は HTTP クライアントを差し替えます (テスト用)。
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the per-request timeout; zero or negative keeps the default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient は配色 API クライアントを返します。baseURL が空なら DefaultBaseURL を使います。
func NewClient(baseURL string, opts ...Option) *Client {
	base := strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	c := &Client{
		baseURL:    base,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL はリクエスト先のベース URL を返します。
func (c *Client) BaseURL() string { return c.baseURL }

// GeneratePalette はプロンプトを送信し、配色を受け取ります。
func (c *Client) GeneratePalette(ctx context.Context, prompt string) (*Response, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, errors.New("prompt is required")
	}
	body, err := json.Marshal(Request{Prompt: prompt})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	data, err := c.call(ctx, http.MethodPost, "/generate-palette", body)
	if err != nil {
		return nil, err
	}
	var resp Response
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("decode palette response: %w", err)
	}
	for i, raw := range resp.Colors {
		norm, err := colorutil.NormalizeHex(raw)
		if err != nil {
			return nil, fmt.Errorf("palette color %d: %w", i, err)
		}
		resp.Colors[i] = norm
	}
	c.logger.Debug("palette.generated", "colors", len(resp.Colors), "source", resp.Source)
	return &resp, nil
}

// Health はサービスの死活を確認します。
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	data, err := c.call(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		return nil, err
	}
	var status HealthStatus
	if err := json.Unmarshal(data, &status); err != nil {
		return nil, fmt.Errorf("decode health response: %w", err)
	}
	return &status, nil
}

func (c *Client) call(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	endpoint := c.baseURL + path
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("palette api %s %s: %w", method, endpoint, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	c.logger.Debug("palette.request", "method", method, "url", endpoint, "status", resp.StatusCode, "elapsed", time.Since(start))
	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &APIError{Method: method, URL: endpoint, StatusCode: resp.StatusCode, Message: errorMessage(raw)}
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func errorMessage(raw []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return strings.TrimSpace(string(raw))
}
