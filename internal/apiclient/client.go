// Package apiclient talks to the artisan directory REST backend.
package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/artisanfinder/web/internal/config"
	"github.com/artisanfinder/web/internal/observability"
	apperrors "github.com/artisanfinder/web/pkg/util/errorutil"
)

// Client issues one HTTP round trip per call. It does not retry or cache.
type Client struct {
	baseURL   string
	userAgent string
	timeout   time.Duration
	logger    *zap.Logger
	metrics   *observability.Metrics
}

// New builds a client for the configured backend.
func New(cfg config.BackendConfig, logger *zap.Logger, metrics *observability.Metrics) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
		timeout:   cfg.Timeout(),
		logger:    logger.Named("apiclient"),
		metrics:   metrics,
	}
}

// request describes one backend call.
type request struct {
	method   string
	path     string
	resource string
	token    string
	body     any
}

// do sends req and decodes a successful JSON body into out when out is non-nil.
func (c *Client) do(ctx context.Context, req request, out any) error {
	if err := ctx.Err(); err != nil {
		return apperrors.NewBackendUnavailable(err)
	}

	agent := fiber.AcquireAgent()
	r := agent.Request()
	r.Header.SetMethod(req.method)
	r.SetRequestURI(c.baseURL + req.path)
	r.Header.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	if c.userAgent != "" {
		agent.Name = c.userAgent
	}
	if req.token != "" {
		agent.Set(fiber.HeaderAuthorization, "Bearer "+req.token)
	}
	if req.body != nil {
		agent.JSON(req.body)
	}
	if timeout := c.callTimeout(ctx); timeout > 0 {
		agent.Timeout(timeout)
	}
	if err := agent.Parse(); err != nil {
		fiber.ReleaseAgent(agent)
		return apperrors.NewBackendUnavailable(err)
	}

	start := time.Now()
	status, body, errs := agent.Bytes()
	if len(errs) > 0 {
		err := errors.Join(errs...)
		c.metrics.RecordBackendCall(req.resource, req.method, 0)
		c.logger.Warn("backend call failed",
			zap.String("method", req.method),
			zap.String("path", req.path),
			zap.Error(err))
		return apperrors.NewBackendUnavailable(err)
	}

	c.metrics.RecordBackendCall(req.resource, req.method, status)
	c.logger.Debug("backend call",
		zap.String("method", req.method),
		zap.String("path", req.path),
		zap.Int("status", status),
		zap.Duration("duration", time.Since(start)))

	if status < fiber.StatusOK || status >= fiber.StatusMultipleChoices {
		c.logger.Warn("backend returned non-success status",
			zap.String("method", req.method),
			zap.String("path", req.path),
			zap.Int("status", status))
		return apperrors.FromStatus(status, req.resource, truncate(string(body), 256))
	}

	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return apperrors.NewBackendError("undecodable backend response", err)
	}
	return nil
}

// callTimeout honours the context deadline, bounded by the configured timeout.
func (c *Client) callTimeout(ctx context.Context) time.Duration {
	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			remaining = time.Millisecond
		}
		if timeout == 0 || remaining < timeout {
			timeout = remaining
		}
	}
	return timeout
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
