// Package commands defines the nftdrop CLI and wires dependencies for subcommands.
//
// Commands
//
//   - distribute   Mint one token per listed account, skipping owners
//   - deploy       Deploy the token contract, initializing it on first deploy
//
// # Implementation
//
// The root command loads the NEAR_* environment, resolves the signing
// credentials and builds the dependency graph (RPC client, services) before
// any subcommand runs, so handlers share one app context. Missing account
// context fails here, before any remote call.
package commands
