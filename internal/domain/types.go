package domain

// TokenClass selects which of the two fixed mint variants a drop uses.
type TokenClass string

// MintMethod is the contract method minting a token of this class.
// Class "1" maps to nft_mint_one; every other class maps to nft_mint_two.
func (c TokenClass) MintMethod() string {
	if c == "1" {
		return "nft_mint_one"
	}
	return "nft_mint_two"
}

// Media is the media file name a minted token of this class carries.
func (c TokenClass) Media() string { return string(c) + ".png" }

// Gas is an execution budget attached to a state-changing call.
type Gas uint64

// TGas is one teragas.
const TGas Gas = 1_000_000_000_000

// MintStatus is the terminal state of one account in a distribution run.
type MintStatus string

const (
	Minted  MintStatus = "minted"
	Skipped MintStatus = "skipped"
	Failed  MintStatus = "failed"
)

// MintOutcome records what happened to a single account. Outcomes are
// created once per processed account and never mutated afterwards.
type MintOutcome struct {
	Account AccountID
	Status  MintStatus
	Detail  string
}

// DistributionRun is the ordered outcome log of one batch invocation,
// one entry per validated account, in input order.
type DistributionRun struct {
	ID       string
	Outcomes []MintOutcome
}

// Ownership is the result of an idempotency check against remote state.
type Ownership int

const (
	// NotOwned means the account verifiably lacks a token of the class.
	NotOwned Ownership = iota
	// Owned means the account already holds a token of the class.
	Owned
	// QueryFailed means the check could not reach a verdict. Callers choose
	// policy; the driver's default is to skip, so a transient query failure
	// can never cause a double mint.
	QueryFailed
)

func (o Ownership) String() string {
	switch o {
	case NotOwned:
		return "not-owned"
	case Owned:
		return "owned"
	default:
		return "query-failed"
	}
}

// TokenMetadata is the on-chain metadata of a minted token.
type TokenMetadata struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Media       string `json:"media,omitempty"`
	Copies      uint64 `json:"copies,omitempty"`
}

// Token is one entry of a tokens-for-owner view result.
type Token struct {
	TokenID  string        `json:"token_id"`
	OwnerID  AccountID     `json:"owner_id"`
	Metadata TokenMetadata `json:"metadata"`
}

// ContractMetadata describes the token collection a deployed contract issues.
type ContractMetadata struct {
	Spec    string `json:"spec"`
	Name    string `json:"name"`
	Symbol  string `json:"symbol"`
	BaseURI string `json:"base_uri,omitempty"`
}

// ExecutionOutcome identifies an applied transaction.
type ExecutionOutcome struct {
	Hash string
	Logs []string
}

// DeploymentPlan is the action list of one deployment invocation, built once
// and submitted as a single atomic transaction.
type DeploymentPlan struct {
	Target AccountID
	// Actions always starts with a deploy-code action; an initialize call
	// follows iff Target had no code at plan-construction time.
	Actions      []Action
	InitIncluded bool
}
