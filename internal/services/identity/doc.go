// Package identity generates, loads and fingerprints the long-term
// identity keypair via an IdentityStore.
package identity
