package keys

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/curve25519"
)

// Version tags the wire layout of composite key structures. The set is
// closed: every switch over it handles the known members and rejects the
// rest, so a new member fails loudly everywhere until it is wired through
// encode, decode and the field-count table.
type Version uint16

const V1 Version = 1

// SecretKey is an Ed25519 signing secret together with the X25519 scalar
// derived from it. XPriv is never stored or transmitted independently; it is
// recomputed from EdPriv wherever a SecretKey is built.
type SecretKey struct {
	EdPriv [64]byte
	XPriv  [32]byte
}

// PublicKey is an Ed25519 signing public key together with the X25519 group
// element derived from it. Like SecretKey.XPriv, XPub is always derived.
type PublicKey struct {
	EdPub [32]byte
	XPub  [32]byte
}

// IdentityKey is a PublicKey in its long-term identity role. The wire
// encoding is identical to a bare PublicKey.
type IdentityKey struct {
	Key PublicKey
}

// KeyPair holds a matching secret and public key. The codec does not verify
// that the two actually match; that is the caller's responsibility.
type KeyPair struct {
	Secret SecretKey
	Public PublicKey
}

// IdentityKeyPair is the long-term identity keypair of a party.
type IdentityKeyPair struct {
	Version  Version
	Secret   SecretKey
	Identity IdentityKey
}

// PreKeyID identifies a prekey within its owner's store.
type PreKeyID uint16

// PreKey is a short-lived keypair published in advance for asynchronous
// key exchange.
type PreKey struct {
	Version Version
	ID      PreKeyID
	Pair    KeyPair
}

// PreKeyBundle is the shareable subset of a PreKey plus the owner's
// identity key. It carries no secret material.
type PreKeyBundle struct {
	Version  Version
	ID       PreKeyID
	Key      PublicKey
	Identity IdentityKey
}

// newSecretKey builds a SecretKey from raw Ed25519 secret bytes, deriving
// the X25519 half.
func newSecretKey(ed [64]byte) SecretKey {
	return SecretKey{EdPriv: ed, XPriv: dhScalarFromEd(ed)}
}

// newPublicKey builds a PublicKey from raw Ed25519 public bytes, deriving
// the X25519 half. It fails if the bytes are not a valid curve point.
func newPublicKey(ed [32]byte) (PublicKey, error) {
	x, err := dhPublicFromEd(ed)
	if err != nil {
		return PublicKey{}, err
	}
	return PublicKey{EdPub: ed, XPub: x}, nil
}

// GenerateKeyPair returns a fresh signing keypair with both key-agreement
// halves derived.
func GenerateKeyPair() (KeyPair, error) {
	edPub, edPriv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return KeyPair{}, err
	}
	var sk [64]byte
	var pk [32]byte
	copy(sk[:], edPriv)
	copy(pk[:], edPub)

	pub, err := newPublicKey(pk)
	if err != nil {
		return KeyPair{}, err
	}
	return KeyPair{Secret: newSecretKey(sk), Public: pub}, nil
}

// GenerateIdentityKeyPair returns a fresh long-term identity keypair.
func GenerateIdentityKeyPair() (IdentityKeyPair, error) {
	kp, err := GenerateKeyPair()
	if err != nil {
		return IdentityKeyPair{}, err
	}
	return IdentityKeyPair{
		Version:  V1,
		Secret:   kp.Secret,
		Identity: IdentityKey{Key: kp.Public},
	}, nil
}

// GeneratePreKey returns a fresh prekey with the given id.
func GeneratePreKey(id PreKeyID) (PreKey, error) {
	kp, err := GenerateKeyPair()
	if err != nil {
		return PreKey{}, err
	}
	return PreKey{Version: V1, ID: id, Pair: kp}, nil
}

// GeneratePreKeys returns n fresh prekeys with ids start, start+1, ...
// wrapping at the uint16 boundary.
func GeneratePreKeys(start PreKeyID, n int) ([]PreKey, error) {
	out := make([]PreKey, 0, n)
	for i := 0; i < n; i++ {
		pk, err := GeneratePreKey(start + PreKeyID(i))
		if err != nil {
			return nil, err
		}
		out = append(out, pk)
	}
	return out, nil
}

// NewPreKeyBundle builds the published bundle for a prekey: its public key,
// its id and the owner's identity key.
func NewPreKeyBundle(identity IdentityKey, pk PreKey) PreKeyBundle {
	return PreKeyBundle{
		Version:  pk.Version,
		ID:       pk.ID,
		Key:      pk.Pair.Public,
		Identity: identity,
	}
}

// Sign signs msg with the Ed25519 half of k.
func (k SecretKey) Sign(msg []byte) []byte {
	return ed25519.Sign(ed25519.PrivateKey(k.EdPriv[:]), msg)
}

// Verify verifies sig over msg with the Ed25519 half of k.
func (k PublicKey) Verify(msg, sig []byte) bool {
	return ed25519.Verify(ed25519.PublicKey(k.EdPub[:]), msg, sig)
}

// Fingerprint returns a SHA-256 hex digest of the signing public key.
func (k PublicKey) Fingerprint() string {
	sum := sha256.Sum256(k.EdPub[:])
	return hex.EncodeToString(sum[:])
}

// Fingerprint returns the fingerprint of the underlying public key.
func (k IdentityKey) Fingerprint() string { return k.Key.Fingerprint() }

// SharedSecret computes the X25519 shared secret between a local secret key
// and a remote public key.
func SharedSecret(sk SecretKey, pk PublicKey) ([32]byte, error) {
	var out [32]byte
	secret, err := curve25519.X25519(sk.XPriv[:], pk.XPub[:])
	if err != nil {
		return out, err
	}
	copy(out[:], secret)
	return out, nil
}
