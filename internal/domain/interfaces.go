package domain

import (
	"context"
	"math/big"
)

// ContractClient invokes named methods on a deployed contract.
type ContractClient interface {
	// View runs a read-only query and returns the raw result bytes.
	View(ctx context.Context, contract AccountID, method string, args any) ([]byte, error)

	// Call signs and submits a state-changing call with the given execution
	// budget and deposit (nil means zero).
	Call(ctx context.Context, contract AccountID, method string, args any, gas Gas, deposit *big.Int) (ExecutionOutcome, error)
}

// Ledger extends ContractClient with account inspection and raw
// multi-action transaction submission.
type Ledger interface {
	ContractClient

	// HasCode reports whether the account has contract code deployed.
	HasCode(ctx context.Context, account AccountID) (bool, error)

	// SignAndSend submits actions as a single atomic transaction against
	// receiver and waits for its outcome.
	SignAndSend(ctx context.Context, receiver AccountID, actions []Action) (ExecutionOutcome, error)
}
