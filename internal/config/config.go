package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config is the resolved process configuration. It is built once by Load and
// passed by value; nothing mutates it afterwards.
type Config struct {
	APIKey         string
	BaseURL        string
	RequestTimeout time.Duration
	LogLevel       string
}

// ConfigurationError reports a missing or malformed setting. It is fatal at
// startup.
type ConfigurationError struct {
	Key    string
	Reason string
}

func (e *ConfigurationError) Error() string {
	env := strings.ToUpper(e.Key)
	if e.Reason == "" {
		return fmt.Sprintf("configuration error: %s is required (set %s or --%s)", e.Key, env, flagName(e.Key))
	}
	return fmt.Sprintf("configuration error: %s: %s", e.Key, e.Reason)
}

// Init wires viper to the environment, an optional .env file and the
// persistent flags of root. Flag names map to keys by replacing '-' with '_'.
func Init(root *cobra.Command) {
	viper.AutomaticEnv()
	_ = godotenv.Load(".env")
	if root != nil {
		root.PersistentFlags().VisitAll(func(f *pflag.Flag) {
			_ = viper.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
		})
	}
	setDefaults()
}

func setDefaults() {
	viper.SetDefault(KeyBaseURL, DefaultBaseURL)
	viper.SetDefault(KeyRequestTimeout, "30s")
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyTransport, "stdio")
	viper.SetDefault(KeyHTTPHost, "127.0.0.1")
	viper.SetDefault(KeyHTTPPort, 8000)
}

func APIKey() string         { return viper.GetString(KeyAPIKey) }
func BaseURL() string        { return viper.GetString(KeyBaseURL) }
func RequestTimeout() string { return viper.GetString(KeyRequestTimeout) }
func LogLevel() string       { return viper.GetString(KeyLogLevel) }
func Transport() string      { return viper.GetString(KeyTransport) }
func HTTPHost() string       { return viper.GetString(KeyHTTPHost) }
func HTTPPort() int          { return viper.GetInt(KeyHTTPPort) }

// Load resolves and validates the adapter configuration.
func Load() (Config, error) {
	cfg := Config{
		APIKey:   strings.TrimSpace(APIKey()),
		BaseURL:  strings.TrimSpace(BaseURL()),
		LogLevel: strings.ToLower(strings.TrimSpace(LogLevel())),
	}
	if cfg.APIKey == "" {
		return Config{}, &ConfigurationError{Key: KeyAPIKey}
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	timeout, err := parseDuration(RequestTimeout(), 30*time.Second)
	if err != nil {
		return Config{}, &ConfigurationError{Key: KeyRequestTimeout, Reason: err.Error()}
	}
	if timeout <= 0 {
		return Config{}, &ConfigurationError{Key: KeyRequestTimeout, Reason: "must be positive"}
	}
	cfg.RequestTimeout = timeout

	return cfg, nil
}

func parseDuration(value string, fallback time.Duration) (time.Duration, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback, nil
	}
	return time.ParseDuration(trimmed)
}

func flagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}
