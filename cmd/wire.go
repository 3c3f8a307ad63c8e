package cmd

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/bnema/pairup/internal/adapters/notify/slack"
	pairsrender "github.com/bnema/pairup/internal/adapters/render/pairs"
	tomlrepo "github.com/bnema/pairup/internal/adapters/repo/toml"
	chainstore "github.com/bnema/pairup/internal/adapters/secrets/chain"
	"github.com/bnema/pairup/internal/application"
	"github.com/bnema/pairup/internal/config"
	"github.com/bnema/pairup/internal/logging"
	"github.com/bnema/pairup/internal/pairing"
	"github.com/bnema/pairup/internal/ports"
)

type app struct {
	rotation   *application.RotationService
	roster     *application.RosterService
	tokens     *application.TokenService
	renderPlan func(pairing.Plan, pairsrender.RenderOptions) (string, error)
	logger     *zap.Logger
	now        func() time.Time
}

func wireApp() (*app, error) {
	v := viper.New()
	cfg, err := config.Load(v)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(logging.Options{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: os.Stderr})
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	repos, err := wireRepositories(v)
	if err != nil {
		return nil, err
	}

	secretStore, err := chainstore.NewPassWithFileFallback(cfg.SecretsDir)
	if err != nil {
		return nil, fmt.Errorf("wire secret store chain: %w", err)
	}
	tokens := application.NewTokenService(secretStore, logger.Named("tokens"))

	notifier, err := wireNotifier(cfg.Slack, tokens, logger)
	if err != nil {
		return nil, err
	}

	clock := ports.SystemClock{}
	return &app{
		rotation:   application.NewRotationService(repos, pairing.NewOptimizer(cfg.Search), notifier, clock, logger.Named("rotation")),
		roster:     application.NewRosterService(repos, logger.Named("roster")),
		tokens:     tokens,
		renderPlan: pairsrender.Render,
		logger:     logger,
		now:        clock.Now,
	}, nil
}

func wireRepositories(v *viper.Viper) (application.Repositories, error) {
	members, err := tomlrepo.NewMemberRepository(v)
	if err != nil {
		return application.Repositories{}, fmt.Errorf("wire member repository: %w", err)
	}
	absences, err := tomlrepo.NewAbsenceRepository(v)
	if err != nil {
		return application.Repositories{}, fmt.Errorf("wire absence repository: %w", err)
	}
	sessions, err := tomlrepo.NewSessionRepository(v)
	if err != nil {
		return application.Repositories{}, fmt.Errorf("wire session repository: %w", err)
	}

	return application.Repositories{Members: members, Absences: absences, Sessions: sessions}, nil
}

// wireNotifier returns a nil notifier when no Slack channel is configured.
// A token from the config wins over the one kept in the secret store.
func wireNotifier(cfg config.SlackConfig, tokens *application.TokenService, logger *zap.Logger) (ports.Notifier, error) {
	if !cfg.Enabled() {
		return nil, nil
	}

	var source slack.TokenSource = tokens
	if cfg.Token != "" {
		source = slack.StaticToken(cfg.Token)
	}

	notifier, err := slack.NewNotifier(slack.Config{
		BaseURL: cfg.BaseURL,
		Channel: cfg.Channel,
		Mention: cfg.Mention,
	}, source, &http.Client{}, logger.Named("slack"))
	if err != nil {
		return nil, fmt.Errorf("wire slack notifier: %w", err)
	}

	return notifier, nil
}
