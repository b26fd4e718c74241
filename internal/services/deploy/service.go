package deploy

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/TENK-DAO/NFT/internal/domain"
)

// InitGas is the fixed execution budget for the one-time initialize call.
const InitGas = 300 * domain.TGas

// InitMethod is the contract's one-time constructor.
const InitMethod = "new"

// InitArgs carries the constructor arguments: the collection owner and its
// metadata.
type InitArgs struct {
	OwnerID  domain.AccountID        `json:"owner_id"`
	Metadata domain.ContractMetadata `json:"metadata"`
}

// Service builds and submits one atomic deploy-and-initialize transaction.
type Service struct {
	ledger domain.Ledger
	log    *slog.Logger
}

func New(ledger domain.Ledger, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{ledger: ledger, log: log}
}

// Plan builds the action list for target. The deploy-code action is always
// present; the initialize call is added iff target currently has no code,
// because re-initializing an installed contract would reset its persisted
// token state.
func (s *Service) Plan(ctx context.Context, target domain.AccountID, wasm []byte, init InitArgs) (domain.DeploymentPlan, error) {
	hasCode, err := s.ledger.HasCode(ctx, target)
	if err != nil {
		return domain.DeploymentPlan{}, fmt.Errorf("inspect %s: %w", target, err)
	}

	plan := domain.DeploymentPlan{
		Target:  target,
		Actions: []domain.Action{domain.NewDeployContract(wasm)},
	}
	if hasCode {
		s.log.Info("contract code already present, redeploying without init", "account", target)
		return plan, nil
	}

	argsJSON, err := json.Marshal(init)
	if err != nil {
		return domain.DeploymentPlan{}, fmt.Errorf("marshal init args: %w", err)
	}
	plan.Actions = append(plan.Actions, domain.NewFunctionCall(InitMethod, argsJSON, InitGas, nil))
	plan.InitIncluded = true
	return plan, nil
}

// Run submits the plan as a single transaction and returns its outcome.
func (s *Service) Run(ctx context.Context, plan domain.DeploymentPlan) (domain.ExecutionOutcome, error) {
	out, err := s.ledger.SignAndSend(ctx, plan.Target, plan.Actions)
	if err != nil {
		return domain.ExecutionOutcome{}, fmt.Errorf("deploy to %s: %w", plan.Target, err)
	}
	s.log.Info("contract deployed", "account", plan.Target, "tx", out.Hash, "init", plan.InitIncluded)
	return out, nil
}
