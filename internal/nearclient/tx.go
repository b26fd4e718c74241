package nearclient

import (
	"crypto/ed25519"
	"crypto/sha256"
	"fmt"
	"math/big"

	"github.com/near/borsh-go"

	"github.com/TENK-DAO/NFT/internal/domain"
)

// Borsh mirrors of the NEAR transaction schema. Field order inside the action
// enum fixes the on-wire ordinals and must not change.

const keyTypeED25519 uint8 = 0

type borshPublicKey struct {
	KeyType uint8
	Data    [32]uint8
}

type borshSignature struct {
	KeyType uint8
	Data    [64]uint8
}

type borshCreateAccount struct{}

type borshDeployContract struct {
	Code []byte
}

type borshFunctionCall struct {
	MethodName string
	Args       []byte
	Gas        uint64
	Deposit    big.Int
}

type borshTransfer struct {
	Deposit big.Int
}

type borshStake struct {
	Stake     big.Int
	PublicKey borshPublicKey
}

// Key and account management variants are never issued by this tool; their
// payloads stay empty placeholders that only pin the enum ordinals.
type (
	borshAddKey        struct{}
	borshDeleteKey     struct{}
	borshDeleteAccount struct{}
)

type borshAction struct {
	Enum           borsh.Enum `borsh_enum:"true"`
	CreateAccount  borshCreateAccount
	DeployContract borshDeployContract
	FunctionCall   borshFunctionCall
	Transfer       borshTransfer
	Stake          borshStake
	AddKey         borshAddKey
	DeleteKey      borshDeleteKey
	DeleteAccount  borshDeleteAccount
}

const (
	ordDeployContract = 1
	ordFunctionCall   = 2
)

type borshTransaction struct {
	SignerID   string
	PublicKey  borshPublicKey
	Nonce      uint64
	ReceiverID string
	BlockHash  [32]uint8
	Actions    []borshAction
}

type borshSignedTransaction struct {
	Transaction borshTransaction
	Signature   borshSignature
}

func encodeAction(a domain.Action) (borshAction, error) {
	switch {
	case a.DeployContract != nil:
		return borshAction{
			Enum:           borsh.Enum(ordDeployContract),
			DeployContract: borshDeployContract{Code: a.DeployContract.Code},
		}, nil
	case a.FunctionCall != nil:
		deposit := new(big.Int)
		if a.FunctionCall.Deposit != nil {
			deposit.Set(a.FunctionCall.Deposit)
		}
		return borshAction{
			Enum: borsh.Enum(ordFunctionCall),
			FunctionCall: borshFunctionCall{
				MethodName: a.FunctionCall.MethodName,
				Args:       a.FunctionCall.Args,
				Gas:        uint64(a.FunctionCall.Gas),
				Deposit:    *deposit,
			},
		}, nil
	default:
		return borshAction{}, fmt.Errorf("action has no variant set")
	}
}

// signTransaction borsh-encodes a transaction over the given actions, signs
// its sha256 digest, and returns the serialized signed transaction.
func signTransaction(s Signer, receiver domain.AccountID, nonce uint64, blockHash [32]byte, actions []domain.Action) ([]byte, error) {
	encoded := make([]borshAction, len(actions))
	for i, a := range actions {
		ba, err := encodeAction(a)
		if err != nil {
			return nil, fmt.Errorf("action %d: %w", i, err)
		}
		encoded[i] = ba
	}

	tx := borshTransaction{
		SignerID:   s.Account.String(),
		Nonce:      nonce,
		ReceiverID: receiver.String(),
		BlockHash:  blockHash,
		Actions:    encoded,
	}
	tx.PublicKey.KeyType = keyTypeED25519
	copy(tx.PublicKey.Data[:], s.PublicKey)

	raw, err := borsh.Serialize(tx)
	if err != nil {
		return nil, fmt.Errorf("serialize transaction: %w", err)
	}
	digest := sha256.Sum256(raw)
	sig := ed25519.Sign(s.PrivateKey, digest[:])

	signed := borshSignedTransaction{Transaction: tx}
	signed.Signature.KeyType = keyTypeED25519
	copy(signed.Signature.Data[:], sig)

	out, err := borsh.Serialize(signed)
	if err != nil {
		return nil, fmt.Errorf("serialize signed transaction: %w", err)
	}
	return out, nil
}
