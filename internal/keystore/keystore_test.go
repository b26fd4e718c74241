package keystore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/TENK-DAO/NFT/internal/keystore"
)

func writeCreds(t *testing.T, dir, network, account, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Join(dir, network), 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	path := filepath.Join(dir, network, account+".json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoad_OK(t *testing.T) {
	dir := t.TempDir()
	writeCreds(t, dir, "testnet", "alice.near",
		`{"account_id":"alice.near","public_key":"ed25519:pub","private_key":"ed25519:priv"}`)

	creds, err := keystore.NewFileStore(dir).Load("testnet", "alice.near")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if creds.AccountID != "alice.near" || creds.PrivateKey != "ed25519:priv" {
		t.Errorf("creds = %+v", creds)
	}
}

func TestLoad_FillsAccountID(t *testing.T) {
	dir := t.TempDir()
	writeCreds(t, dir, "testnet", "alice.near", `{"private_key":"ed25519:priv"}`)

	creds, err := keystore.NewFileStore(dir).Load("testnet", "alice.near")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if creds.AccountID != "alice.near" {
		t.Errorf("account id = %q", creds.AccountID)
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := keystore.NewFileStore(t.TempDir()).Load("testnet", "ghost.near"); err == nil {
		t.Fatal("expected error for missing credentials")
	}
}

func TestLoad_MissingPrivateKey(t *testing.T) {
	dir := t.TempDir()
	writeCreds(t, dir, "testnet", "alice.near", `{"account_id":"alice.near"}`)
	if _, err := keystore.NewFileStore(dir).Load("testnet", "alice.near"); err == nil {
		t.Fatal("expected error when private_key is absent")
	}
}

func TestLoad_Malformed(t *testing.T) {
	dir := t.TempDir()
	writeCreds(t, dir, "testnet", "alice.near", `not json`)
	if _, err := keystore.NewFileStore(dir).Load("testnet", "alice.near"); err == nil {
		t.Fatal("expected error for malformed credentials file")
	}
}
