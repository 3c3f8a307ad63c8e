package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/pairup/internal/pairing"
	"github.com/spf13/viper"
)

const (
	DirName    = ".pairup"
	configName = "config"
	configType = "toml"
	envPrefix  = "PAIRUP"

	KeyMembersPath       = "members.path"
	KeyAbsencesPath      = "absences.path"
	KeySessionsPath      = "sessions.path"
	KeySecretsDir        = "secrets.dir"
	KeyMaxPoolSize       = "search.max_pool_size"
	KeyMaxExpansions     = "search.max_expansions"
	KeySlackChannel      = "notify.slack.channel"
	KeySlackMention      = "notify.slack.mention"
	KeySlackBaseURL      = "notify.slack.base_url"
	KeySlackToken        = "notify.slack.token"
	KeyLogLevel          = "log.level"
	KeyLogFormat         = "log.format"
	DefaultSlackBaseURL  = "https://slack.com/api"
	DefaultLogLevel      = "warn"
	DefaultLogFormat     = "console"
	defaultSecretsSubdir = "secrets"
)

type Config struct {
	Dir    string
	Search pairing.Options
	Slack  SlackConfig
	Log    LogConfig
	// SecretsDir backs the file token store.
	SecretsDir string
}

type SlackConfig struct {
	Channel string
	Mention string
	BaseURL string
	Token   string
}

// Enabled reports whether enough is configured to post, a token may still come from the secret store.
func (c SlackConfig) Enabled() bool {
	return strings.TrimSpace(c.Channel) != ""
}

type LogConfig struct {
	Level  string
	Format string
}

// Load registers defaults on cfg, reads ~/.pairup/config.toml when present and
// applies PAIRUP_* environment overrides (PAIRUP_NOTIFY_SLACK_TOKEN, ...).
func Load(cfg *viper.Viper) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}
	dir := filepath.Join(homeDir, DirName)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(dir)
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	cfg.SetDefault(KeyMaxPoolSize, pairing.DefaultMaxPoolSize)
	cfg.SetDefault(KeyMaxExpansions, pairing.DefaultMaxExpansions)
	cfg.SetDefault(KeySlackBaseURL, DefaultSlackBaseURL)
	cfg.SetDefault(KeyLogLevel, DefaultLogLevel)
	cfg.SetDefault(KeyLogFormat, DefaultLogFormat)
	cfg.SetDefault(KeySecretsDir, filepath.Join(dir, defaultSecretsSubdir))

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	out := Config{
		Dir: dir,
		Search: pairing.Options{
			MaxPoolSize:   cfg.GetInt(KeyMaxPoolSize),
			MaxExpansions: cfg.GetInt(KeyMaxExpansions),
		},
		Slack: SlackConfig{
			Channel: strings.TrimSpace(cfg.GetString(KeySlackChannel)),
			Mention: strings.TrimSpace(cfg.GetString(KeySlackMention)),
			BaseURL: strings.TrimRight(strings.TrimSpace(cfg.GetString(KeySlackBaseURL)), "/"),
			Token:   strings.TrimSpace(cfg.GetString(KeySlackToken)),
		},
		Log: LogConfig{
			Level:  cfg.GetString(KeyLogLevel),
			Format: cfg.GetString(KeyLogFormat),
		},
		SecretsDir: cfg.GetString(KeySecretsDir),
	}

	if err := out.Validate(); err != nil {
		return Config{}, err
	}

	return out, nil
}

func (c Config) Validate() error {
	if c.Search.MaxPoolSize < 0 {
		return fmt.Errorf("%s must not be negative", KeyMaxPoolSize)
	}
	if c.Search.MaxExpansions < 0 {
		return fmt.Errorf("%s must not be negative", KeyMaxExpansions)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("unsupported %s %q", KeyLogFormat, c.Log.Format)
	}
	if c.Slack.BaseURL == "" {
		return fmt.Errorf("%s is required", KeySlackBaseURL)
	}

	return nil
}
