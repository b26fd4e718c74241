package nearclient

import (
	"crypto/ed25519"
	"fmt"
	"strings"

	"github.com/mr-tron/base58"

	"github.com/TENK-DAO/NFT/internal/domain"
)

const ed25519Prefix = "ed25519:"

// Signer holds the account and key pair used to sign transactions.
type Signer struct {
	Account    domain.AccountID
	PublicKey  ed25519.PublicKey
	PrivateKey ed25519.PrivateKey
}

// NewSigner builds a signer from a NEAR-encoded secret key.
func NewSigner(account domain.AccountID, secretKey string) (Signer, error) {
	priv, err := ParseSecretKey(secretKey)
	if err != nil {
		return Signer{}, fmt.Errorf("account %s: %w", account, err)
	}
	return Signer{
		Account:    account,
		PublicKey:  priv.Public().(ed25519.PublicKey),
		PrivateKey: priv,
	}, nil
}

// ParseSecretKey decodes "ed25519:<base58>" into an ed25519 private key.
// Both the 64-byte expanded form written by near-cli and a bare 32-byte seed
// are accepted.
func ParseSecretKey(encoded string) (ed25519.PrivateKey, error) {
	raw, ok := strings.CutPrefix(encoded, ed25519Prefix)
	if !ok {
		return nil, fmt.Errorf("secret key must start with %q", ed25519Prefix)
	}
	b, err := base58.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("decode secret key: %w", err)
	}
	switch len(b) {
	case ed25519.PrivateKeySize:
		return ed25519.PrivateKey(b), nil
	case ed25519.SeedSize:
		return ed25519.NewKeyFromSeed(b), nil
	default:
		return nil, fmt.Errorf("secret key must be %d or %d bytes, got %d", ed25519.PrivateKeySize, ed25519.SeedSize, len(b))
	}
}

// EncodePublicKey renders pub in the "ed25519:<base58>" form the RPC expects.
func EncodePublicKey(pub ed25519.PublicKey) string {
	return ed25519Prefix + base58.Encode(pub)
}
