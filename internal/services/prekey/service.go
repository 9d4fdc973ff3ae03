package prekey

import (
	"keywire/internal/keys"
	"keywire/internal/store"
)

// Service manages prekey records and builds their published bundles.
type Service struct {
	ids store.IdentityStore
	ps  store.PreKeyStore
}

func New(ids store.IdentityStore, ps store.PreKeyStore) *Service {
	return &Service{ids: ids, ps: ps}
}

// Generate creates and stores n prekeys with sequentially allocated ids and
// returns the ids.
func (s *Service) Generate(n int) ([]keys.PreKeyID, error) {
	start, err := s.ps.NextPreKeyID()
	if err != nil {
		return nil, err
	}
	pks, err := keys.GeneratePreKeys(start, n)
	if err != nil {
		return nil, err
	}
	if err := s.ps.SavePreKeys(pks); err != nil {
		return nil, err
	}
	ids := make([]keys.PreKeyID, 0, n)
	for _, pk := range pks {
		ids = append(ids, pk.ID)
	}
	return ids, nil
}

// Bundle builds the published bundle for the stored prekey with the given
// id: its public key plus the owner's identity key.
func (s *Service) Bundle(passphrase string, id keys.PreKeyID) (keys.PreKeyBundle, error) {
	kp, err := s.ids.LoadIdentity(passphrase)
	if err != nil {
		return keys.PreKeyBundle{}, err
	}
	pk, ok, err := s.ps.LoadPreKey(id)
	if err != nil {
		return keys.PreKeyBundle{}, err
	}
	if !ok {
		return keys.PreKeyBundle{}, errNoPreKey
	}
	return keys.NewPreKeyBundle(kp.Identity, pk), nil
}

// List returns the ids of all stored prekeys.
func (s *Service) List() ([]keys.PreKeyID, error) {
	return s.ps.ListPreKeyIDs()
}

// Remove consumes the prekey with the given id.
func (s *Service) Remove(id keys.PreKeyID) error {
	_, ok, err := s.ps.ConsumePreKey(id)
	if err != nil {
		return err
	}
	if !ok {
		return errNoPreKey
	}
	return nil
}

var errNoPreKey = errString("no such prekey")

type errString string

func (e errString) Error() string { return string(e) }
