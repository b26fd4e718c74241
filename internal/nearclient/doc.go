// Package nearclient implements the domain.Ledger interface over the NEAR
// JSON-RPC 2.0 API.
//
// Read-only views go through the query endpoint. State-changing calls are
// borsh-encoded transactions signed with the configured account key and
// submitted via broadcast_tx_commit; all actions of a transaction are applied
// atomically by the ledger. Non-2xx responses, RPC error objects, and failed
// execution outcomes are returned as errors with enough context to identify
// the offending request.
package nearclient
