package prekey_test

import (
	"testing"

	"keywire/internal/keys"
	"keywire/internal/services/identity"
	"keywire/internal/services/prekey"
	"keywire/internal/store"
)

func TestGenerateAndBundle(t *testing.T) {
	home := t.TempDir()
	pass := "pass"

	fs := store.NewFileStore(home)
	ids := identity.New(fs)
	pks := prekey.New(fs, fs)

	kp, _, err := ids.Generate(pass)
	if err != nil {
		t.Fatalf("generate identity: %v", err)
	}

	allocated, err := pks.Generate(3)
	if err != nil {
		t.Fatalf("generate prekeys: %v", err)
	}
	if len(allocated) != 3 || allocated[0] != 1 || allocated[2] != 3 {
		t.Fatalf("unexpected ids: %v", allocated)
	}

	b, err := pks.Bundle(pass, allocated[1])
	if err != nil {
		t.Fatalf("bundle: %v", err)
	}
	if b.ID != allocated[1] {
		t.Fatalf("want bundle id %d, got %d", allocated[1], b.ID)
	}
	if b.Identity != kp.Identity {
		t.Fatal("bundle carries the wrong identity key")
	}

	// The bundle must round-trip through the wire format unchanged.
	raw, err := b.Marshal()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got, err := keys.UnmarshalPreKeyBundle(raw)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got != b {
		t.Fatal("bundle mismatch after round trip")
	}
}

func TestBundle_MissingPreKey(t *testing.T) {
	home := t.TempDir()
	pass := "pass"

	fs := store.NewFileStore(home)
	ids := identity.New(fs)
	pks := prekey.New(fs, fs)

	if _, _, err := ids.Generate(pass); err != nil {
		t.Fatalf("generate identity: %v", err)
	}
	if _, err := pks.Bundle(pass, 42); err == nil {
		t.Fatal("expected error for missing prekey")
	}
}

func TestRemove(t *testing.T) {
	home := t.TempDir()

	fs := store.NewFileStore(home)
	pks := prekey.New(fs, fs)

	allocated, err := pks.Generate(2)
	if err != nil {
		t.Fatalf("generate prekeys: %v", err)
	}
	if err := pks.Remove(allocated[0]); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := pks.Remove(allocated[0]); err == nil {
		t.Fatal("expected error removing a consumed prekey")
	}

	left, err := pks.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(left) != 1 || left[0] != allocated[1] {
		t.Fatalf("unexpected ids after remove: %v", left)
	}
}
