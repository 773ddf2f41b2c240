// Package sniff inspects entry payloads by their fixed-offset signatures.
//
// The alignment table mirrors what the retail resource loaders expect: some
// payloads (nested archives, GPU resources, fonts) must start on large
// power-of-two boundaries inside the data region, others only need the
// archive's default alignment.
package sniff
