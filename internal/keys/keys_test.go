package keys_test

import (
	"testing"

	"keywire/internal/keys"
)

func TestGenerateKeyPair_SignVerify(t *testing.T) {
	kp := makeKeyPair(t)

	msg := []byte("prekey attestation")
	sig := kp.Secret.Sign(msg)
	if !kp.Public.Verify(msg, sig) {
		t.Fatal("signature did not verify")
	}
	if kp.Public.Verify([]byte("other message"), sig) {
		t.Fatal("signature verified against the wrong message")
	}
}

// The derived X25519 halves must agree with each other: a shared secret
// computed from a's secret and b's public equals the one computed from b's
// secret and a's public. This only holds when both conversion routines map
// into the same key space.
func TestSharedSecret_Symmetric(t *testing.T) {
	a := makeKeyPair(t)
	b := makeKeyPair(t)

	ab, err := keys.SharedSecret(a.Secret, b.Public)
	if err != nil {
		t.Fatalf("SharedSecret: %v", err)
	}
	ba, err := keys.SharedSecret(b.Secret, a.Public)
	if err != nil {
		t.Fatalf("SharedSecret: %v", err)
	}
	if ab != ba {
		t.Fatal("shared secrets differ")
	}
	if ab == ([32]byte{}) {
		t.Fatal("shared secret is zero")
	}
}

func TestFingerprint(t *testing.T) {
	a := makeKeyPair(t)
	b := makeKeyPair(t)

	if a.Public.Fingerprint() != a.Public.Fingerprint() {
		t.Fatal("fingerprint not stable")
	}
	if a.Public.Fingerprint() == b.Public.Fingerprint() {
		t.Fatal("distinct keys share a fingerprint")
	}
	ik := keys.IdentityKey{Key: a.Public}
	if ik.Fingerprint() != a.Public.Fingerprint() {
		t.Fatal("identity fingerprint differs from its public key's")
	}
}

func TestGeneratePreKeys_SequentialIDs(t *testing.T) {
	pks, err := keys.GeneratePreKeys(10, 3)
	if err != nil {
		t.Fatalf("GeneratePreKeys: %v", err)
	}
	for i, pk := range pks {
		if pk.ID != keys.PreKeyID(10+i) {
			t.Fatalf("want id %d, got %d", 10+i, pk.ID)
		}
		if pk.Version != keys.V1 {
			t.Fatalf("want version 1, got %d", pk.Version)
		}
	}
	if pks[0].Pair == pks[1].Pair {
		t.Fatal("prekeys share key material")
	}
}

func TestNewPreKeyBundle_CarriesNoSecret(t *testing.T) {
	id := makeIdentityKeyPair(t)
	pk, err := keys.GeneratePreKey(3)
	if err != nil {
		t.Fatalf("GeneratePreKey: %v", err)
	}

	b := keys.NewPreKeyBundle(id.Identity, pk)
	if b.ID != pk.ID || b.Key != pk.Pair.Public || b.Identity != id.Identity {
		t.Fatal("bundle fields do not match their sources")
	}
}
