package store_test

import (
	"testing"

	"keywire/internal/keys"
	"keywire/internal/store"
)

func makeIdentity(t *testing.T) keys.IdentityKeyPair {
	t.Helper()
	kp, err := keys.GenerateIdentityKeyPair()
	if err != nil {
		t.Fatalf("GenerateIdentityKeyPair: %v", err)
	}
	return kp
}

func TestIdentity_SaveLoad_OK(t *testing.T) {
	home := t.TempDir()
	pass := "pass"

	var ids store.IdentityStore = store.NewFileStore(home)

	kp := makeIdentity(t)
	if err := ids.SaveIdentity(pass, kp); err != nil {
		t.Fatalf("save identity: %v", err)
	}

	got, err := ids.LoadIdentity(pass)
	if err != nil {
		t.Fatalf("load identity: %v", err)
	}
	if got != kp {
		t.Fatal("mismatch after load")
	}

	ok, err := ids.HasIdentity()
	if err != nil {
		t.Fatalf("has identity: %v", err)
	}
	if !ok {
		t.Fatal("identity not reported as present")
	}
}

func TestIdentity_WrongPassphrase_Fails(t *testing.T) {
	home := t.TempDir()
	var ids store.IdentityStore = store.NewFileStore(home)

	if err := ids.SaveIdentity("correct", makeIdentity(t)); err != nil {
		t.Fatalf("save identity: %v", err)
	}
	if _, err := ids.LoadIdentity("wrong"); err == nil {
		t.Fatal("expected error with wrong passphrase")
	}
}

func TestPreKeys_SaveLoadConsume(t *testing.T) {
	home := t.TempDir()
	var ps store.PreKeyStore = store.NewFileStore(home)

	pks, err := keys.GeneratePreKeys(1, 3)
	if err != nil {
		t.Fatalf("GeneratePreKeys: %v", err)
	}
	if err := ps.SavePreKeys(pks); err != nil {
		t.Fatalf("save prekeys: %v", err)
	}

	got, ok, err := ps.LoadPreKey(2)
	if err != nil {
		t.Fatalf("load prekey: %v", err)
	}
	if !ok {
		t.Fatal("prekey 2 not found")
	}
	if got != pks[1] {
		t.Fatal("prekey mismatch after load")
	}

	if _, ok, err := ps.ConsumePreKey(2); err != nil || !ok {
		t.Fatalf("consume prekey: ok=%v err=%v", ok, err)
	}
	if _, ok, _ := ps.LoadPreKey(2); ok {
		t.Fatal("consumed prekey still present")
	}
	if _, ok, err := ps.ConsumePreKey(2); err != nil || ok {
		t.Fatalf("second consume: ok=%v err=%v", ok, err)
	}

	ids, err := ps.ListPreKeyIDs()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(ids) != 2 || ids[0] != 1 || ids[1] != 3 {
		t.Fatalf("unexpected ids after consume: %v", ids)
	}
}

func TestPreKeys_NextID(t *testing.T) {
	home := t.TempDir()
	var ps store.PreKeyStore = store.NewFileStore(home)

	next, err := ps.NextPreKeyID()
	if err != nil {
		t.Fatalf("next id: %v", err)
	}
	if next != 1 {
		t.Fatalf("want first id 1, got %d", next)
	}

	pks, err := keys.GeneratePreKeys(next, 2)
	if err != nil {
		t.Fatalf("GeneratePreKeys: %v", err)
	}
	if err := ps.SavePreKeys(pks); err != nil {
		t.Fatalf("save prekeys: %v", err)
	}

	next, err = ps.NextPreKeyID()
	if err != nil {
		t.Fatalf("next id: %v", err)
	}
	if next != 3 {
		t.Fatalf("want next id 3, got %d", next)
	}
}
