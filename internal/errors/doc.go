// Package errors provides structured, coded errors for keepfocus.
//
// Recoverable reconciliation conditions (no focus holder, no counterpart,
// tag mismatch) are never errors; they fall back silently. This package
// covers what cannot be recovered from: host contract violations, malformed
// wire input, bad configuration, and CLI misuse.
//
// # Error Categories
//
//   - host: the Host Tree Model broke its contract (e.g. node creation
//     returned nothing)
//   - protocol: binary patch frames that fail to decode
//   - description: JSON tree descriptions that fail to decode
//   - config: keepfocus.json problems
//   - cli: command-line input problems
//
// # Usage
//
//	err := errors.New("E041").
//	    WithLocation("next.json", 12, 5).
//	    WithSuggestion(`Element nodes need a "tag" field`)
//
//	fmt.Println(err.Format())
package errors
