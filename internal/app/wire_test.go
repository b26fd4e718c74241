package app_test

import (
	"crypto/ed25519"
	"os"
	"path/filepath"
	"testing"

	"github.com/mr-tron/base58"

	"github.com/TENK-DAO/NFT/internal/app"
)

func testKey(t *testing.T) string {
	t.Helper()
	_, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	return "ed25519:" + base58.Encode(priv)
}

func TestNewWire_MissingAccount(t *testing.T) {
	if _, err := app.NewWire(app.Config{Network: "testnet"}, nil); err == nil {
		t.Fatal("expected configuration error without an account")
	}
}

func TestNewWire_InvalidAccount(t *testing.T) {
	cfg := app.Config{Network: "testnet", AccountID: "not valid!", PrivateKey: testKey(t)}
	if _, err := app.NewWire(cfg, nil); err == nil {
		t.Fatal("expected error for malformed account id")
	}
}

func TestNewWire_EnvKey(t *testing.T) {
	cfg := app.Config{Network: "testnet", AccountID: "alice.near", PrivateKey: testKey(t)}
	w, err := app.NewWire(cfg, nil)
	if err != nil {
		t.Fatalf("NewWire: %v", err)
	}
	if w.Client == nil || w.Distribute == nil || w.Deploy == nil {
		t.Fatalf("wire incomplete: %+v", w)
	}
	if w.Client.Signer().Account != "alice.near" {
		t.Errorf("signer account = %s", w.Client.Signer().Account)
	}
}

func TestNewWire_CredentialsFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "testnet"), 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	body := `{"account_id":"alice.near","private_key":"` + testKey(t) + `"}`
	if err := os.WriteFile(filepath.Join(dir, "testnet", "alice.near.json"), []byte(body), 0o600); err != nil {
		t.Fatalf("write creds: %v", err)
	}

	cfg := app.Config{Network: "testnet", AccountID: "alice.near", CredentialsDir: dir}
	w, err := app.NewWire(cfg, nil)
	if err != nil {
		t.Fatalf("NewWire: %v", err)
	}
	if w.Client.Signer().Account != "alice.near" {
		t.Errorf("signer account = %s", w.Client.Signer().Account)
	}
}

func TestNewWire_NoCredentials(t *testing.T) {
	cfg := app.Config{Network: "testnet", AccountID: "alice.near", CredentialsDir: t.TempDir()}
	if _, err := app.NewWire(cfg, nil); err == nil {
		t.Fatal("expected error when no key material is available")
	}
}
