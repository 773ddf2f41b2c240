// Package types defines the public error taxonomy shared by the sarckit
// packages.
//
// Errors are typed with a stable ErrKind so callers can branch on intent
// (bad magic, bad byte order, corrupt offsets, ...) rather than on message
// text. Every failure is fatal for the call that raised it; no partial
// archive or byte buffer is returned alongside an error.
//
// This package has no dependencies beyond the standard library.
package types
