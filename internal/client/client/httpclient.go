package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/relationest/internal/client/models"
	"github.com/dmitrijs2005/relationest/internal/common"
	"github.com/dmitrijs2005/relationest/internal/logging"
)

const (
	DefaultTimeout    = 30 * time.Second
	DefaultMaxRetries = 3

	maxResponseBytes = 4 << 20
)

type HTTPClient struct {
	baseURL    *url.URL
	http       *http.Client
	timeout    time.Duration
	maxRetries uint64
	newBackOff func() backoff.BackOff
	logger     logging.Logger
}

type Option func(*HTTPClient)

// WithTimeout bounds every single request. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.timeout = d }
}

// WithRetries sets how many times an unavailable GET is retried.
func WithRetries(n uint64) Option {
	return func(c *HTTPClient) { c.maxRetries = n }
}

// WithBackOff replaces the exponential retry schedule.
func WithBackOff(fn func() backoff.BackOff) Option {
	return func(c *HTTPClient) { c.newBackOff = fn }
}

// WithTransport sets the RoundTripper under the bearer transport.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *HTTPClient) {
		if bt, ok := c.http.Transport.(*bearerTransport); ok {
			bt.base = rt
		}
	}
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.logger = l }
}

// NewHTTPClient returns a client for the API at baseURL. tokens supplies the
// credential for authenticated endpoints and may be nil.
func NewHTTPClient(baseURL string, tokens TokenSource, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse api url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return nil, fmt.Errorf("api url %q: want http(s)://host", baseURL)
	}

	c := &HTTPClient{
		baseURL:    u,
		http:       &http.Client{Transport: &bearerTransport{tokens: tokens}},
		timeout:    DefaultTimeout,
		maxRetries: DefaultMaxRetries,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 250 * time.Millisecond
			b.MaxInterval = 2 * time.Second
			return b
		},
		logger: logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	return c.authenticate(ctx, "register", req)
}

func (c *HTTPClient) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	return c.authenticate(ctx, "login", req)
}

func (c *HTTPClient) authenticate(ctx context.Context, endpoint string, body any) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, c.endpoint("api", "auth", endpoint), body, &resp); err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, ErrNoToken
	}
	return &resp, nil
}

func (c *HTTPClient) SubmitChat(ctx context.Context, sub models.ChatSubmission) (*models.ChatReply, error) {
	var reply models.ChatReply
	err := c.do(withAuth(ctx), http.MethodPost, c.endpoint("api", "chat", "submit-form"), sub, &reply)
	if err != nil {
		return nil, err
	}
	if reply.AIResponse == "" {
		return nil, ErrInvalidResponse
	}
	return &reply, nil
}

func (c *HTTPClient) ContinueChat(ctx context.Context, req models.ContinueChatRequest) (*models.ChatReply, error) {
	var reply models.ChatReply
	err := c.do(withAuth(ctx), http.MethodPost, c.endpoint("api", "chat", "continue"), req, &reply)
	if err != nil {
		return nil, err
	}
	if reply.AIResponse == "" {
		return nil, ErrInvalidResponse
	}
	if reply.ChatID == "" {
		reply.ChatID = req.ChatID
	}
	return &reply, nil
}

func (c *HTTPClient) ListChats(ctx context.Context) ([]models.Chat, error) {
	var chats []models.Chat
	if err := c.get(withAuth(ctx), c.endpoint("api", "chat", "chats"), &chats); err != nil {
		return nil, err
	}
	return chats, nil
}

func (c *HTTPClient) GetChat(ctx context.Context, id string) (*models.Chat, error) {
	var chat models.Chat
	if err := c.get(withAuth(ctx), c.endpoint("api", "chat", "chats", url.PathEscape(id)), &chat); err != nil {
		return nil, err
	}
	return &chat, nil
}

func (c *HTTPClient) DeleteChat(ctx context.Context, id string) error {
	return c.do(withAuth(ctx), http.MethodDelete, c.endpoint("api", "chat", "chats", url.PathEscape(id)), nil, nil)
}

func (c *HTTPClient) SubmitContact(ctx context.Context, msg models.ContactMessage) (*models.ContactResponse, error) {
	var resp models.ContactResponse
	if err := c.do(ctx, http.MethodPost, c.endpoint("api", "contact", "submit"), msg, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// endpoint joins already escaped path segments onto the base URL.
func (c *HTTPClient) endpoint(elem ...string) string {
	return c.baseURL.JoinPath(elem...).String()
}

// get retries while the server is unavailable; any other outcome is final.
func (c *HTTPClient) get(ctx context.Context, endpoint string, out any) error {
	op := func() error {
		err := c.do(ctx, http.MethodGet, endpoint, nil, out)
		if err != nil && !errors.Is(err, ErrUnavailable) {
			return backoff.Permanent(err)
		}
		return err
	}

	b := backoff.WithContext(backoff.WithMaxRetries(c.newBackOff(), c.maxRetries), ctx)
	return backoff.RetryNotify(op, b, func(err error, next time.Duration) {
		c.logger.Warn(ctx, "retrying request", "url", endpoint, "error", err, "next", next)
	})
}

func (c *HTTPClient) do(ctx context.Context, method, endpoint string, in, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, requestID)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("%w: read response: %w", ErrUnavailable, err)
	}

	c.logger.Debug(ctx, "api call", "method", method, "url", endpoint, "status", resp.StatusCode,
		"request_id", requestID)

	if err := mapStatus(resp.StatusCode, data); err != nil {
		return err
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	return nil
}

func mapStatus(code int, body []byte) error {
	if code >= 200 && code < 300 {
		return nil
	}

	var eb errorBody
	_ = json.Unmarshal(body, &eb)
	msg := eb.Message
	if msg == "" {
		msg = eb.Error
	}

	switch code {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %w", ErrUnauthorized, &APIError{StatusCode: code, Message: msg})
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return ErrUnavailable
	default:
		return &APIError{StatusCode: code, Message: msg}
	}
}
