package nearclient

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/big"
	"net/http"

	"github.com/mr-tron/base58"

	"github.com/TENK-DAO/NFT/internal/domain"
)

// The runtime reports this code hash for accounts without a contract.
const noCodeHash = "11111111111111111111111111111111"

// Client talks to a NEAR JSON-RPC node on behalf of one signing account.
type Client struct {
	endpoint string
	signer   Signer
	http     *http.Client
	log      *slog.Logger
}

var _ domain.Ledger = (*Client)(nil)

func New(endpoint string, signer Signer, httpClient *http.Client, log *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if log == nil {
		log = slog.Default()
	}
	return &Client{endpoint: endpoint, signer: signer, http: httpClient, log: log}
}

// Signer returns the account the client signs with.
func (c *Client) Signer() Signer { return c.signer }

// View runs a read-only contract query. args is JSON-marshalled; nil means
// no arguments.
func (c *Client) View(ctx context.Context, contract domain.AccountID, method string, args any) ([]byte, error) {
	argsJSON, err := marshalArgs(args)
	if err != nil {
		return nil, fmt.Errorf("view %s.%s: %w", contract, method, err)
	}
	var res callFunctionResult
	err = c.rpc(ctx, "query", callFunctionParams{
		RequestType: "call_function",
		Finality:    "final",
		AccountID:   contract.String(),
		MethodName:  method,
		ArgsBase64:  base64.StdEncoding.EncodeToString(argsJSON),
	}, &res)
	if err != nil {
		return nil, fmt.Errorf("view %s.%s: %w", contract, method, err)
	}
	if res.Error != "" {
		return nil, fmt.Errorf("view %s.%s: %s", contract, method, res.Error)
	}
	out := make([]byte, len(res.Result))
	for i, b := range res.Result {
		out[i] = byte(b)
	}
	return out, nil
}

// Call submits a single function-call transaction and waits for its outcome.
func (c *Client) Call(ctx context.Context, contract domain.AccountID, method string, args any, gas domain.Gas, deposit *big.Int) (domain.ExecutionOutcome, error) {
	argsJSON, err := marshalArgs(args)
	if err != nil {
		return domain.ExecutionOutcome{}, fmt.Errorf("call %s.%s: %w", contract, method, err)
	}
	return c.SignAndSend(ctx, contract, []domain.Action{
		domain.NewFunctionCall(method, argsJSON, gas, deposit),
	})
}

// HasCode reports whether account has contract code deployed.
func (c *Client) HasCode(ctx context.Context, account domain.AccountID) (bool, error) {
	var res viewAccountResult
	err := c.rpc(ctx, "query", viewAccountParams{
		RequestType: "view_account",
		Finality:    "final",
		AccountID:   account.String(),
	}, &res)
	if err != nil {
		return false, fmt.Errorf("view account %s: %w", account, err)
	}
	return res.CodeHash != noCodeHash, nil
}

// SignAndSend submits actions as one atomic transaction against receiver.
func (c *Client) SignAndSend(ctx context.Context, receiver domain.AccountID, actions []domain.Action) (domain.ExecutionOutcome, error) {
	nonce, blockHash, err := c.accessKey(ctx)
	if err != nil {
		return domain.ExecutionOutcome{}, err
	}

	signed, err := signTransaction(c.signer, receiver, nonce+1, blockHash, actions)
	if err != nil {
		return domain.ExecutionOutcome{}, err
	}

	c.log.Debug("broadcasting transaction",
		"signer", c.signer.Account,
		"receiver", receiver,
		"actions", len(actions),
		"nonce", nonce+1)

	var res broadcastResult
	payload := []string{base64.StdEncoding.EncodeToString(signed)}
	if err := c.rpc(ctx, "broadcast_tx_commit", payload, &res); err != nil {
		return domain.ExecutionOutcome{}, fmt.Errorf("broadcast to %s: %w", receiver, err)
	}
	if len(res.Status.Failure) > 0 {
		return domain.ExecutionOutcome{}, fmt.Errorf("transaction %s failed: %s", res.Transaction.Hash, res.Status.Failure)
	}

	logs := append([]string(nil), res.TransactionOutcome.Outcome.Logs...)
	for _, r := range res.ReceiptsOutcome {
		logs = append(logs, r.Outcome.Logs...)
	}
	return domain.ExecutionOutcome{Hash: res.Transaction.Hash, Logs: logs}, nil
}

// accessKey fetches the signer key's current nonce and a recent block hash.
func (c *Client) accessKey(ctx context.Context) (uint64, [32]byte, error) {
	var res viewAccessKeyResult
	err := c.rpc(ctx, "query", viewAccessKeyParams{
		RequestType: "view_access_key",
		Finality:    "final",
		AccountID:   c.signer.Account.String(),
		PublicKey:   EncodePublicKey(c.signer.PublicKey),
	}, &res)
	if err != nil {
		return 0, [32]byte{}, fmt.Errorf("view access key for %s: %w", c.signer.Account, err)
	}
	raw, err := base58.Decode(res.BlockHash)
	if err != nil || len(raw) != 32 {
		return 0, [32]byte{}, fmt.Errorf("malformed block hash %q", res.BlockHash)
	}
	var blockHash [32]byte
	copy(blockHash[:], raw)
	return res.Nonce, blockHash, nil
}

func (c *Client) rpc(ctx context.Context, method string, params any, out any) error {
	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      "dontcare",
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("rpc %s: %s", method, resp.Status)
	}

	var env rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("rpc %s: decode response: %w", method, err)
	}
	if env.Error != nil {
		return fmt.Errorf("rpc %s: %w", method, env.Error)
	}
	if out != nil {
		if err := json.Unmarshal(env.Result, out); err != nil {
			return fmt.Errorf("rpc %s: decode result: %w", method, err)
		}
	}
	return nil
}

func marshalArgs(args any) ([]byte, error) {
	if args == nil {
		return []byte("{}"), nil
	}
	b, err := json.Marshal(args)
	if err != nil {
		return nil, fmt.Errorf("marshal args: %w", err)
	}
	return b, nil
}

// ExplorerTxURL is the human-readable explorer reference for a transaction,
// keyed by network ("testnet" or "mainnet").
func ExplorerTxURL(network, txHash string) string {
	return fmt.Sprintf("https://explorer.%s.near.org/transactions/%s", network, txHash)
}
