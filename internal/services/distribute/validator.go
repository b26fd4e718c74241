package distribute

import "github.com/TENK-DAO/NFT/internal/domain"

// Screen normalizes raw identifiers and splits them into the subset that
// satisfies the account grammar, in input order with duplicates preserved,
// and the normalized entries that fail it. No error is raised for an empty
// valid subset; the caller sees an empty run.
func Screen(raw []string) (valid []domain.AccountID, invalid []string) {
	for _, r := range raw {
		id, err := domain.ParseAccountID(r)
		if err != nil {
			invalid = append(invalid, domain.NormalizeAccountID(r))
			continue
		}
		valid = append(valid, id)
	}
	return valid, invalid
}
