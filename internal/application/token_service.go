package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/bnema/pairup/internal/domain"
	"github.com/bnema/pairup/internal/ports"
)

const SlackTokenKey = "pairup/slack/bot_token"

// TokenService keeps the Slack bot token in the secret store.
type TokenService struct {
	store  ports.SecretStore
	logger *zap.Logger
}

func NewTokenService(store ports.SecretStore, logger *zap.Logger) *TokenService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TokenService{store: store, logger: logger}
}

func (s *TokenService) SetSlackToken(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("slack token is empty")
	}

	if err := s.store.Put(ctx, SlackTokenKey, token); err != nil {
		return fmt.Errorf("store slack token: %w", err)
	}
	s.logger.Info("slack token stored", zap.String("key", SlackTokenKey))

	return nil
}

func (s *TokenService) RemoveSlackToken(ctx context.Context) error {
	if err := s.store.Delete(ctx, SlackTokenKey); err != nil {
		return fmt.Errorf("delete slack token: %w", err)
	}
	s.logger.Info("slack token removed", zap.String("key", SlackTokenKey))

	return nil
}

// Token returns the stored bot token, so the service can back a notifier directly.
func (s *TokenService) Token(ctx context.Context) (string, error) {
	token, err := s.store.Get(ctx, SlackTokenKey)
	if err != nil {
		if errors.Is(err, domain.ErrSecretNotFound) {
			return "", fmt.Errorf("slack token not set (run `pairup notify token set`): %w", err)
		}
		return "", fmt.Errorf("load slack token: %w", err)
	}
	return token, nil
}
