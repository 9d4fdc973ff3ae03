package store

import "keywire/internal/keys"

// IdentityStore persists the long-term identity keypair.
type IdentityStore interface {
	SaveIdentity(passphrase string, kp keys.IdentityKeyPair) error
	LoadIdentity(passphrase string) (keys.IdentityKeyPair, error)
	HasIdentity() (bool, error)
}

// PreKeyStore persists prekey records keyed by their wire id.
type PreKeyStore interface {
	SavePreKeys(pks []keys.PreKey) error
	LoadPreKey(id keys.PreKeyID) (keys.PreKey, bool, error)
	ConsumePreKey(id keys.PreKeyID) (keys.PreKey, bool, error)
	ListPreKeyIDs() ([]keys.PreKeyID, error)
	NextPreKeyID() (keys.PreKeyID, error)
}
