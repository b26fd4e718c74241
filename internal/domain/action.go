package domain

import "math/big"

// Action is one step of a transaction. Exactly one field is non-nil.
// Actions submitted together are applied atomically by the ledger.
type Action struct {
	DeployContract *DeployContractAction
	FunctionCall   *FunctionCallAction
}

// DeployContractAction replaces the receiver account's contract code.
type DeployContractAction struct {
	Code []byte
}

// FunctionCallAction invokes a method on the receiver account's contract.
type FunctionCallAction struct {
	MethodName string
	Args       []byte
	Gas        Gas
	Deposit    *big.Int
}

// NewDeployContract builds a deploy-code action.
func NewDeployContract(code []byte) Action {
	return Action{DeployContract: &DeployContractAction{Code: code}}
}

// NewFunctionCall builds a function-call action. A nil deposit means zero.
func NewFunctionCall(method string, args []byte, gas Gas, deposit *big.Int) Action {
	if deposit == nil {
		deposit = new(big.Int)
	}
	return Action{FunctionCall: &FunctionCallAction{
		MethodName: method,
		Args:       args,
		Gas:        gas,
		Deposit:    deposit,
	}}
}
