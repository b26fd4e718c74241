package nearclient_test

import (
	"crypto/ed25519"
	"strings"
	"testing"

	"github.com/mr-tron/base58"

	"github.com/TENK-DAO/NFT/internal/nearclient"
)

func TestParseSecretKey_ExpandedForm(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	got, err := nearclient.ParseSecretKey("ed25519:" + base58.Encode(priv))
	if err != nil {
		t.Fatalf("ParseSecretKey: %v", err)
	}
	if !got.Public().(ed25519.PublicKey).Equal(pub) {
		t.Fatal("public key mismatch after parse")
	}
}

func TestParseSecretKey_SeedForm(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	got, err := nearclient.ParseSecretKey("ed25519:" + base58.Encode(priv.Seed()))
	if err != nil {
		t.Fatalf("ParseSecretKey: %v", err)
	}
	if !got.Public().(ed25519.PublicKey).Equal(pub) {
		t.Fatal("public key mismatch after parse from seed")
	}
}

func TestParseSecretKey_Rejects(t *testing.T) {
	for _, bad := range []string{
		"",
		"abcd",         // no prefix
		"ed25519:",     // empty payload
		"ed25519:0OIl", // invalid base58
		"ed25519:" + base58.Encode([]byte{1, 2, 3}), // wrong length
	} {
		if _, err := nearclient.ParseSecretKey(bad); err == nil {
			t.Errorf("ParseSecretKey(%q): expected error", bad)
		}
	}
}

func TestNewSigner(t *testing.T) {
	_, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	s, err := nearclient.NewSigner("alice.near", "ed25519:"+base58.Encode(priv))
	if err != nil {
		t.Fatalf("NewSigner: %v", err)
	}
	if s.Account != "alice.near" {
		t.Errorf("account = %s", s.Account)
	}
	if !strings.HasPrefix(nearclient.EncodePublicKey(s.PublicKey), "ed25519:") {
		t.Error("encoded public key missing prefix")
	}
}
