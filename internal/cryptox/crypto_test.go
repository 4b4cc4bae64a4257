package cryptox

import (
	"bytes"
	"testing"
)

func TestHashPIN_Deterministic(t *testing.T) {
	pin := []byte("1234")
	salt := []byte("fixed-salt-16byt")

	h1 := HashPIN(pin, salt)
	h2 := HashPIN(pin, salt)

	if !bytes.Equal(h1, h2) {
		t.Errorf("expected same result for same inputs, got different")
	}
	if len(h1) != 32 {
		t.Errorf("expected 32-byte hash, got %d", len(h1))
	}
}

func TestHashPIN_DifferentSalts(t *testing.T) {
	pin := []byte("1234")

	h1 := HashPIN(pin, []byte("salt-1"))
	h2 := HashPIN(pin, []byte("salt-2"))

	if bytes.Equal(h1, h2) {
		t.Errorf("expected different results for different salts, got same")
	}
}

func TestGenerateSalt_SizeAndUniqueness(t *testing.T) {
	s1 := GenerateSalt()
	s2 := GenerateSalt()

	if len(s1) != SaltSize || len(s2) != SaltSize {
		t.Fatalf("unexpected salt lengths: %d, %d", len(s1), len(s2))
	}
	if bytes.Equal(s1, s2) {
		t.Logf("warning: two generated salts are identical; extremely unlikely")
	}
}

func TestVerifyPIN(t *testing.T) {
	salt := GenerateSalt()
	stored := HashPIN([]byte("1234"), salt)

	if !VerifyPIN([]byte("1234"), stored, salt) {
		t.Errorf("expected correct PIN to verify")
	}
	if VerifyPIN([]byte("9999"), stored, salt) {
		t.Errorf("expected wrong PIN to fail verification")
	}
	if VerifyPIN([]byte("1234"), stored, GenerateSalt()) {
		t.Errorf("expected wrong salt to fail verification")
	}
}
