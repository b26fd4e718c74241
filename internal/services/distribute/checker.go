package distribute

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"

	"github.com/TENK-DAO/NFT/internal/domain"
)

// Page size for the tokens-for-owner view.
const tokensPageLimit = 50

// Checker decides whether an account already holds a token of a class.
type Checker struct {
	client domain.ContractClient
	log    *slog.Logger
}

func NewChecker(client domain.ContractClient, log *slog.Logger) *Checker {
	if log == nil {
		log = slog.Default()
	}
	return &Checker{client: client, log: log}
}

type tokensForOwnerArgs struct {
	AccountID string `json:"account_id"`
	FromIndex string `json:"from_index"`
	Limit     int    `json:"limit"`
}

// Ownership pages through the account's owned tokens looking for one whose
// metadata media equals the class-derived file name. A failed or malformed
// view yields QueryFailed rather than an error, logged with the account so
// an operator can re-investigate; callers choose the skip-or-mint policy.
func (c *Checker) Ownership(ctx context.Context, contract, owner domain.AccountID, class domain.TokenClass) domain.Ownership {
	media := class.Media()
	for from := 0; ; from += tokensPageLimit {
		raw, err := c.client.View(ctx, contract, "nft_tokens_for_owner", tokensForOwnerArgs{
			AccountID: owner.String(),
			FromIndex: strconv.Itoa(from),
			Limit:     tokensPageLimit,
		})
		if err != nil {
			c.log.Warn("ownership query failed", "account", owner, "err", err)
			return domain.QueryFailed
		}
		var tokens []domain.Token
		if err := json.Unmarshal(raw, &tokens); err != nil {
			c.log.Warn("malformed tokens-for-owner response", "account", owner, "err", err)
			return domain.QueryFailed
		}
		for _, t := range tokens {
			if t.Metadata.Media == media {
				return domain.Owned
			}
		}
		if len(tokens) < tokensPageLimit {
			return domain.NotOwned
		}
	}
}
