package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// AccountID is a ledger account identifier, e.g. "alice.near".
type AccountID string

// String returns the string form of the account identifier.
func (a AccountID) String() string { return string(a) }

// Account identifier length bounds.
const (
	MinAccountIDLen = 2
	MaxAccountIDLen = 64
)

// Lower-case alphanumeric parts joined by "-", "_" or ".", never at the edges.
var accountIDPattern = regexp.MustCompile(`^(([a-z0-9]+[-_])*[a-z0-9]+\.)*([a-z0-9]+[-_])*[a-z0-9]+$`)

// NormalizeAccountID trims surrounding whitespace and lower-cases raw.
func NormalizeAccountID(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// ParseAccountID normalizes raw and checks it against the account grammar.
func ParseAccountID(raw string) (AccountID, error) {
	s := NormalizeAccountID(raw)
	if len(s) < MinAccountIDLen || len(s) > MaxAccountIDLen {
		return "", fmt.Errorf("account id %q: length must be %d-%d characters", s, MinAccountIDLen, MaxAccountIDLen)
	}
	if !accountIDPattern.MatchString(s) {
		return "", fmt.Errorf("account id %q: invalid format", s)
	}
	return AccountID(s), nil
}
