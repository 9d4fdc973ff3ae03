// Package keys defines the key material of the offline key-exchange scheme
// and its versioned binary codec.
//
// Contents
//
//   - Key types: SecretKey, PublicKey, IdentityKey, KeyPair,
//     IdentityKeyPair, PreKey, PreKeyBundle
//   - Generation (GenerateKeyPair, GenerateIdentityKeyPair, GeneratePreKeys)
//   - Signing, verification and X25519 shared secrets
//   - The wire codec (binary.go): Encode*/Decode* pairs over cbor streams
//     plus Marshal/Unmarshal convenience wrappers
//
// # Notes
//
// Every key carries both an Ed25519 signing half and an X25519
// key-agreement half, but only the signing half exists on the wire; the
// other is derived through the conversion routines in convert.go. Decoding
// is all-or-nothing: any failure aborts without a partial object. Encode
// and decode hold no state and are safe for concurrent use.
package keys
