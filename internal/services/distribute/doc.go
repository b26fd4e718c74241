// Package distribute turns a raw account list into a sequence of idempotent
// mint calls against a token contract.
//
// Screen normalizes and grammar-checks raw identifiers. Checker queries the
// contract to decide whether an account already holds a token of the drop's
// class. Service drives the per-account loop: check, mint or skip, record
// the outcome; a single account's failure never aborts the run. Re-running
// the same list is the retry mechanism, because minted accounts are skipped
// by the ownership check.
package distribute
