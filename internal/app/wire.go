package app

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/TENK-DAO/NFT/internal/domain"
	"github.com/TENK-DAO/NFT/internal/keystore"
	"github.com/TENK-DAO/NFT/internal/nearclient"
	"github.com/TENK-DAO/NFT/internal/services/deploy"
	"github.com/TENK-DAO/NFT/internal/services/distribute"
)

// Wire bundles the ledger client and high-level services for the CLI.
type Wire struct {
	Config     Config
	Client     *nearclient.Client
	Distribute *distribute.Service
	Deploy     *deploy.Service
	Log        *slog.Logger
}

// NewWire constructs the dependency graph from cfg. Missing account context
// is a configuration error reported here, before any remote call is issued.
func NewWire(cfg Config, log *slog.Logger) (*Wire, error) {
	if log == nil {
		log = slog.Default()
	}
	if cfg.AccountID == "" {
		return nil, errors.New("no account configured: set NEAR_ACCOUNT_ID or pass --account")
	}
	account, err := domain.ParseAccountID(cfg.AccountID)
	if err != nil {
		return nil, err
	}

	// Env key takes precedence over the credentials file.
	secret := cfg.PrivateKey
	if secret == "" {
		dir := cfg.CredentialsDir
		if dir == "" {
			dir, err = keystore.DefaultDir()
			if err != nil {
				return nil, err
			}
		}
		creds, err := keystore.NewFileStore(dir).Load(cfg.Network, account)
		if err != nil {
			return nil, err
		}
		secret = creds.PrivateKey
	}
	signer, err := nearclient.NewSigner(account, secret)
	if err != nil {
		return nil, err
	}

	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	client := nearclient.New(cfg.NodeEndpoint(), signer, httpClient, log)
	checker := distribute.NewChecker(client, log)

	return &Wire{
		Config:     cfg,
		Client:     client,
		Distribute: distribute.New(client, checker, log),
		Deploy:     deploy.New(client, log),
		Log:        log,
	}, nil
}
