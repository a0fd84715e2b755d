// Package backend talks to the remote booking backend that owns courts and bookings.
package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
)

//go:generate go run go.uber.org/mock/mockgen -source=client.go -destination=mock/client_mock.go -package=mock github.com/savioruz/courtside/pkg/backend Client

const (
	_defaultTimeout = 10 * time.Second

	mimeJSON = "application/json"
)

var ErrEmptyResponse = errors.New("backend: response has no data")

type Client interface {
	Get(ctx context.Context, path, token string, out any) error
	Post(ctx context.Context, path, token string, in, out any) error
}

// Error is a non-2xx answer from the backend.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("backend: status %d: %s", e.StatusCode, e.Message)
}

// envelope is the backend's response body: {"data": ...} on success, {"error": ...} otherwise.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

type client struct {
	http    *fasthttp.Client
	baseURL string
	timeout time.Duration
}

func New(baseURL string, opts ...Option) Client {
	c := &client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: _defaultTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.http == nil {
		c.http = &fasthttp.Client{
			ReadTimeout:              c.timeout,
			WriteTimeout:             c.timeout,
			NoDefaultUserAgentHeader: true,
		}
	}

	return c
}

func (c *client) Get(ctx context.Context, path, token string, out any) error {
	return c.do(ctx, fasthttp.MethodGet, path, token, nil, out)
}

func (c *client) Post(ctx context.Context, path, token string, in, out any) error {
	return c.do(ctx, fasthttp.MethodPost, path, token, in, out)
}

func (c *client) do(ctx context.Context, method, path, token string, in, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)

	res := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(res)

	req.SetRequestURI(c.baseURL + path)
	req.Header.SetMethod(method)
	req.Header.Set(fasthttp.HeaderAccept, mimeJSON)

	if token != "" {
		req.Header.Set(fasthttp.HeaderAuthorization, "Bearer "+token)
	}

	if in != nil {
		body, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("backend: marshal request: %w", err)
		}

		req.Header.SetContentType(mimeJSON)
		req.SetBodyRaw(body)
	}

	deadline := time.Now().Add(c.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	if err := c.http.DoDeadline(req, res, deadline); err != nil {
		return fmt.Errorf("backend: %s %s: %w", method, path, err)
	}

	var env envelope

	status := res.StatusCode()
	decodeErr := json.Unmarshal(res.Body(), &env)

	if status < fasthttp.StatusOK || status >= fasthttp.StatusMultipleChoices {
		return &Error{StatusCode: status, Message: errorMessage(env, decodeErr, status)}
	}

	if out == nil {
		return nil
	}

	if decodeErr != nil {
		return fmt.Errorf("backend: decode response: %w", decodeErr)
	}

	if len(env.Data) == 0 || string(env.Data) == "null" {
		return ErrEmptyResponse
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("backend: decode data: %w", err)
	}

	return nil
}

func errorMessage(env envelope, decodeErr error, status int) string {
	if decodeErr == nil {
		if env.Error != "" {
			return env.Error
		}

		if env.Message != "" {
			return env.Message
		}
	}

	return fasthttp.StatusMessage(status)
}
