package keys

import (
	"crypto/sha512"

	"filippo.io/edwards25519"
)

// dhScalarFromEd converts an Ed25519 secret key to its X25519 scalar: the
// SHA-512 digest of the 32-byte seed, clamped per RFC 7748. This is the
// single conversion routine for secret keys; SecretKey.XPriv is only ever
// produced here.
func dhScalarFromEd(ed [64]byte) [32]byte {
	h := sha512.Sum512(ed[:32])
	h[0] &= 248
	h[31] &= 127
	h[31] |= 64

	var out [32]byte
	copy(out[:], h[:32])
	return out
}

// dhPublicFromEd converts an Ed25519 public key to its X25519 group element
// via the birational map between the Edwards and Montgomery forms of
// Curve25519. This is the single conversion routine for public keys;
// PublicKey.XPub is only ever produced here.
func dhPublicFromEd(ed [32]byte) ([32]byte, error) {
	var out [32]byte
	p, err := new(edwards25519.Point).SetBytes(ed[:])
	if err != nil {
		return out, err
	}
	copy(out[:], p.BytesMontgomery())
	return out, nil
}
