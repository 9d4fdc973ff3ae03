package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"

	"keywire/internal/keys"
	"keywire/internal/util/memzero"
)

const (
	idFile     = "identity.enc"
	prekeyFile = "prekeys.json" // map[id]wire bytes of each PreKey
)

// FileStore keeps the identity keypair and prekeys on disk under a single
// directory. The identity is sealed in a passphrase envelope; records are
// stored as the codec's wire bytes, not as re-serialized structs.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

func NewFileStore(dir string) *FileStore { return &FileStore{dir: dir} }

// ---------- Identity ----------

func (s *FileStore) SaveIdentity(passphrase string, kp keys.IdentityKeyPair) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := kp.Marshal()
	if err != nil {
		return err
	}
	blob, err := encrypt(passphrase, raw)
	memzero.Zero(raw)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, idFile), blob, 0o600)
}

func (s *FileStore) LoadIdentity(passphrase string) (keys.IdentityKeyPair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, err := os.ReadFile(filepath.Join(s.dir, idFile))
	if err != nil {
		return keys.IdentityKeyPair{}, err
	}
	raw, err := decrypt(passphrase, blob)
	if err != nil {
		return keys.IdentityKeyPair{}, err
	}
	kp, err := keys.UnmarshalIdentityKeyPair(raw)
	memzero.Zero(raw)
	return kp, err
}

// HasIdentity reports whether an identity file exists, without touching the
// passphrase.
func (s *FileStore) HasIdentity() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := os.Stat(filepath.Join(s.dir, idFile))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ---------- Prekeys ----------

func (s *FileStore) SavePreKeys(pks []keys.PreKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := make(map[string][]byte)
	if err := s.readPreKeys(&m); err != nil {
		return err
	}
	for _, pk := range pks {
		raw, err := pk.Marshal()
		if err != nil {
			return err
		}
		m[prekeyKey(pk.ID)] = raw
	}
	return s.writePreKeys(m)
}

func (s *FileStore) LoadPreKey(id keys.PreKeyID) (keys.PreKey, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadPreKeyLocked(id)
}

// ConsumePreKey loads a prekey and removes it from the store, so a one-time
// key cannot be handed out twice.
func (s *FileStore) ConsumePreKey(id keys.PreKeyID) (keys.PreKey, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := make(map[string][]byte)
	if err := s.readPreKeys(&m); err != nil {
		return keys.PreKey{}, false, err
	}
	raw, ok := m[prekeyKey(id)]
	if !ok {
		return keys.PreKey{}, false, nil
	}
	pk, err := keys.UnmarshalPreKey(raw)
	if err != nil {
		return keys.PreKey{}, false, err
	}
	delete(m, prekeyKey(id))
	if err := s.writePreKeys(m); err != nil {
		return keys.PreKey{}, false, err
	}
	return pk, true, nil
}

func (s *FileStore) ListPreKeyIDs() ([]keys.PreKeyID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := make(map[string][]byte)
	if err := s.readPreKeys(&m); err != nil {
		return nil, err
	}
	out := make([]keys.PreKeyID, 0, len(m))
	for k := range m {
		id, err := parsePreKeyKey(k)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

// NextPreKeyID returns one past the highest stored id, wrapping at the
// uint16 boundary.
func (s *FileStore) NextPreKeyID() (keys.PreKeyID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := make(map[string][]byte)
	if err := s.readPreKeys(&m); err != nil {
		return 0, err
	}
	var max keys.PreKeyID
	for k := range m {
		id, err := parsePreKeyKey(k)
		if err != nil {
			return 0, err
		}
		if id > max {
			max = id
		}
	}
	if len(m) == 0 {
		return 1, nil
	}
	return max + 1, nil
}

// ---------- helpers ----------

func (s *FileStore) loadPreKeyLocked(id keys.PreKeyID) (keys.PreKey, bool, error) {
	m := make(map[string][]byte)
	if err := s.readPreKeys(&m); err != nil {
		return keys.PreKey{}, false, err
	}
	raw, ok := m[prekeyKey(id)]
	if !ok {
		return keys.PreKey{}, false, nil
	}
	pk, err := keys.UnmarshalPreKey(raw)
	if err != nil {
		return keys.PreKey{}, false, err
	}
	return pk, true, nil
}

func (s *FileStore) readPreKeys(m *map[string][]byte) error {
	data, err := os.ReadFile(filepath.Join(s.dir, prekeyFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return json.Unmarshal(data, m)
}

func (s *FileStore) writePreKeys(m map[string][]byte) error {
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, prekeyFile), b, 0o600)
}

func prekeyKey(id keys.PreKeyID) string {
	return strconv.FormatUint(uint64(id), 10)
}

func parsePreKeyKey(k string) (keys.PreKeyID, error) {
	v, err := strconv.ParseUint(k, 10, 16)
	if err != nil {
		return 0, err
	}
	return keys.PreKeyID(v), nil
}
