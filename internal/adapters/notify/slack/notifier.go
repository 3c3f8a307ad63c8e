package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/codeGROOVE-dev/retry"
	"go.uber.org/zap"

	"github.com/bnema/pairup/internal/ports"
)

const (
	DefaultBaseURL = "https://slack.com/api"

	maxResponseBytes      = 1 << 20
	defaultAttempts       = 4
	defaultRetryDelay     = time.Second
	defaultMaxRetryDelay  = 30 * time.Second
	defaultRequestTimeout = 15 * time.Second

	errRateLimited = "ratelimited"
)

// TokenSource resolves the bot token at send time.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken is a TokenSource for a token known up front.
type StaticToken string

func (t StaticToken) Token(context.Context) (string, error) {
	return string(t), nil
}

type Config struct {
	BaseURL string
	Channel string
	Mention string

	Attempts       uint
	RetryDelay     time.Duration
	MaxRetryDelay  time.Duration
	RequestTimeout time.Duration
}

// Notifier posts rotation announcements through chat.postMessage.
type Notifier struct {
	cfg    Config
	tokens TokenSource
	client *http.Client
	logger *zap.Logger
}

var _ ports.Notifier = (*Notifier)(nil)

func NewNotifier(cfg Config, tokens TokenSource, client *http.Client, logger *zap.Logger) (*Notifier, error) {
	if strings.TrimSpace(cfg.Channel) == "" {
		return nil, errors.New("slack channel is required")
	}
	if tokens == nil {
		return nil, errors.New("slack token source is required")
	}

	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Attempts == 0 {
		cfg.Attempts = defaultAttempts
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = defaultRetryDelay
	}
	if cfg.MaxRetryDelay <= 0 {
		cfg.MaxRetryDelay = defaultMaxRetryDelay
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Notifier{cfg: cfg, tokens: tokens, client: client, logger: logger}, nil
}

// transientError marks failures worth another attempt.
type transientError struct {
	err error
}

func (e *transientError) Error() string { return e.err.Error() }
func (e *transientError) Unwrap() error { return e.err }

// APIError is a Slack response with ok=false.
type APIError struct {
	Code string
}

func (e *APIError) Error() string {
	return "slack api error: " + e.Code
}

type postMessageResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

func (n *Notifier) Announce(ctx context.Context, announcement ports.Announcement) error {
	token, err := n.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("resolve slack token: %w", err)
	}
	if strings.TrimSpace(token) == "" {
		return errors.New("slack token is empty")
	}

	body, err := json.Marshal(postMessageRequest{
		Channel: n.cfg.Channel,
		Text:    BuildText(announcement, n.cfg.Mention),
		Blocks:  BuildBlocks(announcement, n.cfg.Mention),
	})
	if err != nil {
		return fmt.Errorf("encode slack message: %w", err)
	}

	err = retry.Do(
		func() error {
			return n.post(ctx, token, body)
		},
		retry.Context(ctx),
		retry.Attempts(n.cfg.Attempts),
		retry.Delay(n.cfg.RetryDelay),
		retry.MaxDelay(n.cfg.MaxRetryDelay),
		retry.DelayType(retry.CombineDelay(retry.BackOffDelay, retry.RandomDelay)),
		retry.MaxJitter(n.cfg.RetryDelay/4),
		retry.OnRetry(func(attempt uint, err error) {
			n.logger.Warn("retrying slack post",
				zap.Uint("attempt", attempt+1),
				zap.Uint("max_attempts", n.cfg.Attempts),
				zap.Error(err),
			)
		}),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			var transient *transientError
			return errors.As(err, &transient)
		}),
	)
	if err != nil {
		return fmt.Errorf("post slack message: %w", err)
	}

	n.logger.Info("posted rotation to slack",
		zap.String("channel", n.cfg.Channel),
		zap.Int("pairs", len(announcement.Pairs)),
	)
	return nil
}

func (n *Notifier) post(ctx context.Context, token string, body []byte) error {
	reqCtx, cancel := context.WithTimeout(ctx, n.cfg.RequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, n.cfg.BaseURL+"/chat.postMessage", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := n.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return &transientError{err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return &transientError{err: fmt.Errorf("http %d", resp.StatusCode)}
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("http %d", resp.StatusCode)
	}

	var payload postMessageResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&payload); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if !payload.OK {
		apiErr := &APIError{Code: payload.Error}
		if payload.Error == errRateLimited {
			return &transientError{err: apiErr}
		}
		return apiErr
	}

	return nil
}
