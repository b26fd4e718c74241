package app

import (
	"fmt"
	"net/http"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Network        string `env:"NEAR_ENV" envDefault:"testnet"`
	NodeURL        string `env:"NEAR_NODE_URL"`
	AccountID      string `env:"NEAR_ACCOUNT_ID"`
	PrivateKey     string `env:"NEAR_PRIVATE_KEY"`
	CredentialsDir string `env:"NEAR_CREDENTIALS_DIR"`

	// HTTP is optional; NewWire falls back to http.DefaultClient.
	HTTP *http.Client `env:"-"`
}

// LoadConfig reads .env (when present) and the NEAR_* environment.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// NodeEndpoint is the configured RPC endpoint, defaulting to the public
// node of the configured network.
func (c Config) NodeEndpoint() string {
	if c.NodeURL != "" {
		return c.NodeURL
	}
	return fmt.Sprintf("https://rpc.%s.near.org", c.Network)
}
