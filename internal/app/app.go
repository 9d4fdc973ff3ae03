package app

import "keywire/internal/keys"

// IdentityService is what the CLI needs from the identity layer.
type IdentityService interface {
	Generate(passphrase string) (keys.IdentityKeyPair, string, error)
	Load(passphrase string) (keys.IdentityKeyPair, error)
	Fingerprint(passphrase string) (string, error)
}

// PreKeyService is what the CLI needs from the prekey layer.
type PreKeyService interface {
	Generate(n int) ([]keys.PreKeyID, error)
	Bundle(passphrase string, id keys.PreKeyID) (keys.PreKeyBundle, error)
	List() ([]keys.PreKeyID, error)
	Remove(id keys.PreKeyID) error
}

// App bundles the wired services for the command layer.
type App struct {
	IDs     IdentityService
	PreKeys PreKeyService
}

func New(ids IdentityService, pks PreKeyService) *App {
	return &App{IDs: ids, PreKeys: pks}
}
