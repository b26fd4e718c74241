// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (accounts, tokens, outcomes, actions) and contracts
// (interfaces) only.
package domain
