// Package deploy stands up the token contract on a target account.
//
// A deployment plan always carries a deploy-code action and, iff the target
// has no code yet, a one-time initialize call. Both are submitted as a single
// transaction so the ledger applies them atomically; there is no rollback
// logic beyond that.
package deploy
