package pass

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/bnema/pairup/internal/domain"
	"github.com/bnema/pairup/internal/ports"
)

var ErrUnavailable = errors.New("pass command unavailable")

// pass prints this on stderr for unknown entries.
const missingEntryMarker = "is not in the password store"

type runFunc func(ctx context.Context, stdin string, args ...string) (stdout string, stderr string, err error)

// Store reads and writes secrets through the pass(1) password manager.
type Store struct {
	run runFunc
}

var _ ports.SecretStore = (*Store)(nil)

func NewStore() *Store {
	return &Store{run: runPass}
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, stderr, err := s.run(ctx, value+"\n", "insert", "--multiline", "--force", key); err != nil {
		return commandError("insert", key, err, stderr)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	stdout, stderr, err := s.run(ctx, "", "show", key)
	if err != nil {
		if strings.Contains(stderr, missingEntryMarker) {
			return "", fmt.Errorf("pass entry %q: %w", key, domain.ErrSecretNotFound)
		}
		return "", commandError("show", key, err, stderr)
	}

	// Multiline entries keep only the first line, as pass -c does.
	first, _, _ := strings.Cut(stdout, "\n")
	return strings.TrimSuffix(first, "\r"), nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, stderr, err := s.run(ctx, "", "rm", "--force", key)
	if err != nil {
		if strings.Contains(stderr, missingEntryMarker) {
			return nil
		}
		return commandError("rm", key, err, stderr)
	}

	return nil
}

func runPass(ctx context.Context, stdin string, args ...string) (string, string, error) {
	bin, err := exec.LookPath("pass")
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", "", ErrUnavailable
		}
		return "", "", fmt.Errorf("locate pass: %w", err)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}

	var out, errOut bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errOut

	err = cmd.Run()
	return out.String(), strings.TrimSpace(errOut.String()), err
}

func commandError(op string, key string, err error, stderr string) error {
	if stderr == "" {
		return fmt.Errorf("pass %s %q: %w", op, key, err)
	}
	return fmt.Errorf("pass %s %q: %w: %s", op, key, err, stderr)
}
