package core

import "testing"

func TestIdentifierAcquireAndRelease(t *testing.T) {
	ownerA := &struct{ name string }{"a"}
	ownerB := &struct{ name string }{"b"}

	idA := IdentifierAcquireNewID(ownerA)
	idB := IdentifierAcquireNewID(ownerB)
	if idA == idB {
		t.Fatalf("distinct owners got the same id %d", idA)
	}

	if err := IdentifierReleaseID(idA); err != nil {
		t.Fatalf("release failed: %v", err)
	}

	// The freed slot is the lowest available one again.
	idC := IdentifierAcquireNewID(ownerA)
	if idC != idA {
		t.Errorf("reacquired id = %d, want reused slot %d", idC, idA)
	}

	if err := IdentifierReleaseID(1 << 20); err == nil {
		t.Error("out-of-range release must fail")
	}
}
