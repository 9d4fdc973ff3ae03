package keys

import (
	"bytes"

	"keywire/internal/cbor"
)

// The wire layouts, all version 1:
//
//	SecretKey        bytes(64)
//	PublicKey        bytes(32)
//	IdentityKey      bytes(32), identical to PublicKey
//	KeyPair          SecretKey, PublicKey (no wrapper)
//	IdentityKeyPair  array(3): uint16(1), SecretKey, IdentityKey
//	PreKeyID         uint16
//	PreKey           array(3): uint16(1), PreKeyID, KeyPair
//	PreKeyBundle     array(4): uint16(1), PreKeyID, PublicKey, IdentityKey
//
// Only the Ed25519 halves of keys go on the wire; the X25519 halves are
// re-derived on decode, so a mismatched pair cannot be expressed in bytes.

// decodeKeyBytes reads a byte string and requires it to be exactly want
// bytes long. Signing keys have fixed widths; anything else is corruption
// or an unsupported key type.
func decodeKeyBytes(d *cbor.Decoder, want int) ([]byte, error) {
	b, err := d.Bytes()
	if err != nil {
		return nil, err
	}
	if len(b) != want {
		return nil, &ByteLenError{Want: want, Got: len(b)}
	}
	return b, nil
}

// EncodeVersion writes v as its uint16 wire tag.
func EncodeVersion(e *cbor.Encoder, v Version) error {
	switch v {
	case V1:
		return e.UInt16(uint16(v))
	default:
		return &UnknownVersionError{Value: uint16(v)}
	}
}

// DecodeVersion reads a uint16 wire tag and maps it into the version
// enumeration, failing closed on anything unknown.
func DecodeVersion(d *cbor.Decoder) (Version, error) {
	raw, err := d.UInt16()
	if err != nil {
		return 0, err
	}
	switch raw {
	case 1:
		return V1, nil
	default:
		return 0, &UnknownVersionError{Value: raw}
	}
}

// EncodeSecretKey writes the Ed25519 secret bytes only.
func EncodeSecretKey(e *cbor.Encoder, k SecretKey) error {
	return e.Bytes(k.EdPriv[:])
}

// DecodeSecretKey reads 64 Ed25519 secret bytes and re-derives the X25519
// scalar.
func DecodeSecretKey(d *cbor.Decoder) (SecretKey, error) {
	b, err := decodeKeyBytes(d, 64)
	if err != nil {
		return SecretKey{}, err
	}
	var ed [64]byte
	copy(ed[:], b)
	return newSecretKey(ed), nil
}

// EncodePublicKey writes the Ed25519 public bytes only.
func EncodePublicKey(e *cbor.Encoder, k PublicKey) error {
	return e.Bytes(k.EdPub[:])
}

// DecodePublicKey reads 32 Ed25519 public bytes and re-derives the X25519
// group element.
func DecodePublicKey(d *cbor.Decoder) (PublicKey, error) {
	b, err := decodeKeyBytes(d, 32)
	if err != nil {
		return PublicKey{}, err
	}
	var ed [32]byte
	copy(ed[:], b)
	return newPublicKey(ed)
}

// EncodeIdentityKey writes an identity key, byte-identical to its bare
// public key.
func EncodeIdentityKey(e *cbor.Encoder, k IdentityKey) error {
	return EncodePublicKey(e, k.Key)
}

func DecodeIdentityKey(d *cbor.Decoder) (IdentityKey, error) {
	pk, err := DecodePublicKey(d)
	if err != nil {
		return IdentityKey{}, err
	}
	return IdentityKey{Key: pk}, nil
}

// EncodeKeyPair writes secret then public, with no envelope of its own:
// key pairs only appear inside version-tagged composites.
func EncodeKeyPair(e *cbor.Encoder, k KeyPair) error {
	if err := EncodeSecretKey(e, k.Secret); err != nil {
		return err
	}
	return EncodePublicKey(e, k.Public)
}

func DecodeKeyPair(d *cbor.Decoder) (KeyPair, error) {
	sk, err := DecodeSecretKey(d)
	if err != nil {
		return KeyPair{}, err
	}
	pk, err := DecodePublicKey(d)
	if err != nil {
		return KeyPair{}, err
	}
	return KeyPair{Secret: sk, Public: pk}, nil
}

func EncodePreKeyID(e *cbor.Encoder, id PreKeyID) error {
	return e.UInt16(uint16(id))
}

func DecodePreKeyID(d *cbor.Decoder) (PreKeyID, error) {
	v, err := d.UInt16()
	if err != nil {
		return 0, err
	}
	return PreKeyID(v), nil
}

// EncodeIdentityKeyPair writes array(3): version, secret key, identity key.
func EncodeIdentityKeyPair(e *cbor.Encoder, k IdentityKeyPair) error {
	switch k.Version {
	case V1:
		if err := e.Array(3); err != nil {
			return err
		}
		if err := EncodeVersion(e, k.Version); err != nil {
			return err
		}
		if err := EncodeSecretKey(e, k.Secret); err != nil {
			return err
		}
		return EncodeIdentityKey(e, k.Identity)
	default:
		return &UnknownVersionError{Value: uint16(k.Version)}
	}
}

// DecodeIdentityKeyPair reads the array header, then the version, and only
// then checks the declared element count: the count is a property of the
// version, so the version has to be known first.
func DecodeIdentityKeyPair(d *cbor.Decoder) (IdentityKeyPair, error) {
	n, err := d.Array()
	if err != nil {
		return IdentityKeyPair{}, err
	}
	v, err := DecodeVersion(d)
	if err != nil {
		return IdentityKeyPair{}, err
	}
	switch v {
	case V1:
		if n != 3 {
			return IdentityKeyPair{}, &ArrayLenError{Len: n}
		}
		sk, err := DecodeSecretKey(d)
		if err != nil {
			return IdentityKeyPair{}, err
		}
		ik, err := DecodeIdentityKey(d)
		if err != nil {
			return IdentityKeyPair{}, err
		}
		return IdentityKeyPair{Version: v, Secret: sk, Identity: ik}, nil
	default:
		return IdentityKeyPair{}, &UnknownVersionError{Value: uint16(v)}
	}
}

// EncodePreKey writes array(3): version, prekey id, key pair.
func EncodePreKey(e *cbor.Encoder, k PreKey) error {
	switch k.Version {
	case V1:
		if err := e.Array(3); err != nil {
			return err
		}
		if err := EncodeVersion(e, k.Version); err != nil {
			return err
		}
		if err := EncodePreKeyID(e, k.ID); err != nil {
			return err
		}
		return EncodeKeyPair(e, k.Pair)
	default:
		return &UnknownVersionError{Value: uint16(k.Version)}
	}
}

func DecodePreKey(d *cbor.Decoder) (PreKey, error) {
	n, err := d.Array()
	if err != nil {
		return PreKey{}, err
	}
	v, err := DecodeVersion(d)
	if err != nil {
		return PreKey{}, err
	}
	switch v {
	case V1:
		if n != 3 {
			return PreKey{}, &ArrayLenError{Len: n}
		}
		id, err := DecodePreKeyID(d)
		if err != nil {
			return PreKey{}, err
		}
		kp, err := DecodeKeyPair(d)
		if err != nil {
			return PreKey{}, err
		}
		return PreKey{Version: v, ID: id, Pair: kp}, nil
	default:
		return PreKey{}, &UnknownVersionError{Value: uint16(v)}
	}
}

// EncodePreKeyBundle writes array(4): version, prekey id, public key,
// identity key. No secret material is included.
func EncodePreKeyBundle(e *cbor.Encoder, k PreKeyBundle) error {
	switch k.Version {
	case V1:
		if err := e.Array(4); err != nil {
			return err
		}
		if err := EncodeVersion(e, k.Version); err != nil {
			return err
		}
		if err := EncodePreKeyID(e, k.ID); err != nil {
			return err
		}
		if err := EncodePublicKey(e, k.Key); err != nil {
			return err
		}
		return EncodeIdentityKey(e, k.Identity)
	default:
		return &UnknownVersionError{Value: uint16(k.Version)}
	}
}

func DecodePreKeyBundle(d *cbor.Decoder) (PreKeyBundle, error) {
	n, err := d.Array()
	if err != nil {
		return PreKeyBundle{}, err
	}
	v, err := DecodeVersion(d)
	if err != nil {
		return PreKeyBundle{}, err
	}
	switch v {
	case V1:
		if n != 4 {
			return PreKeyBundle{}, &ArrayLenError{Len: n}
		}
		id, err := DecodePreKeyID(d)
		if err != nil {
			return PreKeyBundle{}, err
		}
		pk, err := DecodePublicKey(d)
		if err != nil {
			return PreKeyBundle{}, err
		}
		ik, err := DecodeIdentityKey(d)
		if err != nil {
			return PreKeyBundle{}, err
		}
		return PreKeyBundle{Version: v, ID: id, Key: pk, Identity: ik}, nil
	default:
		return PreKeyBundle{}, &UnknownVersionError{Value: uint16(v)}
	}
}

// Marshal returns the wire bytes of k.
func (k IdentityKeyPair) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeIdentityKeyPair(cbor.NewEncoder(&buf), k); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalIdentityKeyPair parses wire bytes produced by Marshal.
func UnmarshalIdentityKeyPair(b []byte) (IdentityKeyPair, error) {
	return DecodeIdentityKeyPair(cbor.NewDecoder(bytes.NewReader(b)))
}

// Marshal returns the wire bytes of k.
func (k PreKey) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodePreKey(cbor.NewEncoder(&buf), k); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalPreKey parses wire bytes produced by Marshal.
func UnmarshalPreKey(b []byte) (PreKey, error) {
	return DecodePreKey(cbor.NewDecoder(bytes.NewReader(b)))
}

// Marshal returns the wire bytes of k.
func (k PreKeyBundle) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodePreKeyBundle(cbor.NewEncoder(&buf), k); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalPreKeyBundle parses wire bytes produced by Marshal.
func UnmarshalPreKeyBundle(b []byte) (PreKeyBundle, error) {
	return DecodePreKeyBundle(cbor.NewDecoder(bytes.NewReader(b)))
}
