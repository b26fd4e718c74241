package nearclient

import (
	"encoding/json"
	"fmt"
)

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
}

type rpcError struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *rpcError) Error() string {
	if len(e.Data) > 0 {
		return fmt.Sprintf("rpc error %d: %s: %s", e.Code, e.Message, e.Data)
	}
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

type callFunctionParams struct {
	RequestType string `json:"request_type"`
	Finality    string `json:"finality"`
	AccountID   string `json:"account_id"`
	MethodName  string `json:"method_name"`
	ArgsBase64  string `json:"args_base64"`
}

// result is a JSON array of byte values, not a base64 string.
type callFunctionResult struct {
	Result []int    `json:"result"`
	Logs   []string `json:"logs"`
	Error  string   `json:"error"`
}

type viewAccountParams struct {
	RequestType string `json:"request_type"`
	Finality    string `json:"finality"`
	AccountID   string `json:"account_id"`
}

type viewAccountResult struct {
	Amount   string `json:"amount"`
	CodeHash string `json:"code_hash"`
}

type viewAccessKeyParams struct {
	RequestType string `json:"request_type"`
	Finality    string `json:"finality"`
	AccountID   string `json:"account_id"`
	PublicKey   string `json:"public_key"`
}

type viewAccessKeyResult struct {
	Nonce     uint64 `json:"nonce"`
	BlockHash string `json:"block_hash"`
}

type txOutcome struct {
	Outcome struct {
		Logs []string `json:"logs"`
	} `json:"outcome"`
}

type broadcastResult struct {
	Status struct {
		SuccessValue *string         `json:"SuccessValue,omitempty"`
		Failure      json.RawMessage `json:"Failure,omitempty"`
	} `json:"status"`
	Transaction struct {
		Hash string `json:"hash"`
	} `json:"transaction"`
	TransactionOutcome txOutcome   `json:"transaction_outcome"`
	ReceiptsOutcome    []txOutcome `json:"receipts_outcome"`
}
