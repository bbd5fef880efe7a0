package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Env holds overrides read from the environment. Non-empty values win over
// the active profile.
type Env struct {
	Home           string        `env:"DICTPANEL_HOME"`
	BaseURL        string        `env:"DICTPANEL_BASE_URL"`
	SessionToken   string        `env:"DICTPANEL_SESSION_TOKEN"`
	EmbeddingToken string        `env:"DICTPANEL_EMBEDDING_TOKEN"`
	Locale         string        `env:"DICTPANEL_LOCALE"`
	DownloadDir    string        `env:"DICTPANEL_DOWNLOAD_DIR"`
	HTTPTimeout    time.Duration `env:"DICTPANEL_HTTP_TIMEOUT" envDefault:"30s"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
