package keystore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/TENK-DAO/NFT/internal/domain"
)

// Credentials is one near-cli credentials file.
type Credentials struct {
	AccountID  string `json:"account_id"`
	PublicKey  string `json:"public_key"`
	PrivateKey string `json:"private_key"`
}

// FileStore reads credentials files scoped to a base directory.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore { return &FileStore{dir: dir} }

// DefaultDir is where near-cli keeps credentials, ~/.near-credentials.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".near-credentials"), nil
}

// Load returns the credentials for account on network.
func (s *FileStore) Load(network string, account domain.AccountID) (Credentials, error) {
	path := filepath.Join(s.dir, network, account.String()+".json")
	blob, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Credentials{}, fmt.Errorf("no credentials for %s on %s (expected %s)", account, network, path)
		}
		return Credentials{}, err
	}
	var c Credentials
	if err := json.Unmarshal(blob, &c); err != nil {
		return Credentials{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if c.PrivateKey == "" {
		return Credentials{}, fmt.Errorf("%s: missing private_key", path)
	}
	if c.AccountID == "" {
		c.AccountID = account.String()
	}
	return c, nil
}
