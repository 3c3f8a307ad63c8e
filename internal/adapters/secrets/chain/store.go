package chain

import (
	"context"
	"errors"
	"fmt"

	filestore "github.com/bnema/pairup/internal/adapters/secrets/file"
	passstore "github.com/bnema/pairup/internal/adapters/secrets/pass"
	"github.com/bnema/pairup/internal/ports"
)

// Store tries primary first and falls back to the second backend.
// Deletes go to both so a token rotated out of one cannot linger in the other.
type Store struct {
	primary  ports.SecretStore
	fallback ports.SecretStore
}

var _ ports.SecretStore = (*Store)(nil)

var (
	errNilPrimary  = errors.New("primary secret store is nil")
	errNilFallback = errors.New("fallback secret store is nil")
)

func NewStore(primary ports.SecretStore, fallback ports.SecretStore) (*Store, error) {
	if primary == nil {
		return nil, errNilPrimary
	}
	if fallback == nil {
		return nil, errNilFallback
	}

	return &Store{primary: primary, fallback: fallback}, nil
}

// NewPassWithFileFallback uses pass when installed and plain files under fileRoot otherwise.
func NewPassWithFileFallback(fileRoot string) (*Store, error) {
	return NewStore(passstore.NewStore(), filestore.NewStore(fileRoot))
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	value, err := s.primary.Get(ctx, key)
	if err == nil {
		return value, nil
	}
	if isContextErr(err) {
		return "", err
	}

	value, fallbackErr := s.fallback.Get(ctx, key)
	if fallbackErr == nil {
		return value, nil
	}

	return "", fmt.Errorf("get secret %q: primary: %w; fallback: %w", key, err, fallbackErr)
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	err := s.primary.Put(ctx, key, value)
	if err == nil || isContextErr(err) {
		return err
	}

	if fallbackErr := s.fallback.Put(ctx, key, value); fallbackErr != nil {
		return fmt.Errorf("put secret %q: primary: %w; fallback: %w", key, err, fallbackErr)
	}

	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	err := s.primary.Delete(ctx, key)
	if isContextErr(err) {
		return err
	}
	if err != nil && !errors.Is(err, passstore.ErrUnavailable) {
		err = fmt.Errorf("primary: %w", err)
	} else {
		err = nil
	}

	if fallbackErr := s.fallback.Delete(ctx, key); fallbackErr != nil {
		err = errors.Join(err, fmt.Errorf("fallback: %w", fallbackErr))
	}
	if err != nil {
		return fmt.Errorf("delete secret %q: %w", key, err)
	}

	return nil
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
