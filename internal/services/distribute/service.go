package distribute

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/TENK-DAO/NFT/internal/domain"
)

// DefaultMintGas is the fixed execution budget attached to every mint call.
const DefaultMintGas = 100 * domain.TGas

// DefaultPerTx is the default amount-per-transaction pacing value.
const DefaultPerTx = 200

// Service drives a batch distribution run.
type Service struct {
	client  domain.ContractClient
	checker *Checker
	log     *slog.Logger
}

func New(client domain.ContractClient, checker *Checker, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{client: client, checker: checker, log: log}
}

// Params configures one distribution run.
type Params struct {
	Contract domain.AccountID
	Class    domain.TokenClass

	// Gas per mint call; zero means DefaultMintGas.
	Gas domain.Gas

	// PerTx paces the run length for external throttling. It does not batch
	// mints; every mint stays a single discrete call.
	PerTx int

	// OnOutcome, when set, observes each outcome as it is recorded.
	OnOutcome func(domain.MintOutcome)
}

type mintArgs struct {
	ReceiverID string `json:"receiver_id"`
}

// Run processes accounts strictly in input order with exactly one remote
// call in flight at a time, so outcome order equals input order and every
// failure is attributable to one account. The returned run holds one
// outcome per account; no retry happens within a run.
func (s *Service) Run(ctx context.Context, accounts []domain.AccountID, p Params) domain.DistributionRun {
	if p.Gas == 0 {
		p.Gas = DefaultMintGas
	}
	if p.PerTx <= 0 {
		p.PerTx = DefaultPerTx
	}

	run := domain.DistributionRun{
		ID:       uuid.NewString(),
		Outcomes: make([]domain.MintOutcome, 0, len(accounts)),
	}
	log := s.log.With("run", run.ID, "contract", p.Contract, "class", p.Class)
	log.Info("starting distribution", "accounts", len(accounts), "per_tx", p.PerTx)

	for _, account := range accounts {
		out := s.processOne(ctx, account, p, log)
		run.Outcomes = append(run.Outcomes, out)
		if p.OnOutcome != nil {
			p.OnOutcome(out)
		}
	}

	var minted, skipped, failed int
	for _, out := range run.Outcomes {
		switch out.Status {
		case domain.Minted:
			minted++
		case domain.Skipped:
			skipped++
		case domain.Failed:
			failed++
		}
	}
	log.Info("distribution finished", "minted", minted, "skipped", skipped, "failed", failed)
	return run
}

func (s *Service) processOne(ctx context.Context, account domain.AccountID, p Params, log *slog.Logger) domain.MintOutcome {
	switch s.checker.Ownership(ctx, p.Contract, account, p.Class) {
	case domain.Owned:
		log.Info("token already owned, skipping", "account", account)
		return domain.MintOutcome{Account: account, Status: domain.Skipped}
	case domain.QueryFailed:
		// Conservative: an unverifiable account is skipped, never minted
		// twice. The failure was already logged by the checker.
		return domain.MintOutcome{Account: account, Status: domain.Skipped, Detail: "ownership query failed"}
	}

	_, err := s.client.Call(ctx, p.Contract, p.Class.MintMethod(), mintArgs{ReceiverID: account.String()}, p.Gas, nil)
	if err != nil {
		log.Error("mint failed", "account", account, "err", err)
		return domain.MintOutcome{Account: account, Status: domain.Failed, Detail: err.Error()}
	}
	return domain.MintOutcome{Account: account, Status: domain.Minted}
}
