// Package store provides file-based persistence for keywire's key material.
//
// It implements the IdentityStore and PreKeyStore interfaces over a single
// directory. The identity keypair is sealed with a passphrase-derived key
// (Argon2id + ChaCha20-Poly1305); prekeys are kept as the binary codec's
// wire bytes. All methods are concurrency-safe via internal locking.
package store
