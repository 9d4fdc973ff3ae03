package identity

import (
	"keywire/internal/keys"
	"keywire/internal/store"
)

// Service manages the long-term identity keypair.
type Service struct {
	ids store.IdentityStore
}

func New(ids store.IdentityStore) *Service { return &Service{ids: ids} }

// Generate creates and stores a fresh identity keypair, returning it with
// its fingerprint. It refuses to overwrite an existing identity.
func (s *Service) Generate(passphrase string) (keys.IdentityKeyPair, string, error) {
	exists, err := s.ids.HasIdentity()
	if err != nil {
		return keys.IdentityKeyPair{}, "", err
	}
	if exists {
		return keys.IdentityKeyPair{}, "", errIdentityExists
	}

	kp, err := keys.GenerateIdentityKeyPair()
	if err != nil {
		return keys.IdentityKeyPair{}, "", err
	}
	if err := s.ids.SaveIdentity(passphrase, kp); err != nil {
		return keys.IdentityKeyPair{}, "", err
	}
	return kp, kp.Identity.Fingerprint(), nil
}

// Load returns the stored identity keypair.
func (s *Service) Load(passphrase string) (keys.IdentityKeyPair, error) {
	return s.ids.LoadIdentity(passphrase)
}

// Fingerprint returns the stored identity's fingerprint.
func (s *Service) Fingerprint(passphrase string) (string, error) {
	kp, err := s.ids.LoadIdentity(passphrase)
	if err != nil {
		return "", err
	}
	return kp.Identity.Fingerprint(), nil
}

var errIdentityExists = errString("identity already exists")

type errString string

func (e errString) Error() string { return string(e) }
