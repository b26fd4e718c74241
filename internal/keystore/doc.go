// Package keystore reads signing credentials from disk.
//
// The layout is compatible with near-cli: <dir>/<network>/<account>.json
// containing the account id and its key pair, so credentials created with
// "near login" work unchanged.
package keystore
