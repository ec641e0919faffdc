package security

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	if hash == "secret1" {
		t.Fatal("hash must not equal the plaintext")
	}

	if err := CheckPassword(hash, "secret1"); err != nil {
		t.Fatalf("check with correct password: %v", err)
	}

	if err := CheckPassword(hash, "wrong!!"); err == nil {
		t.Fatal("expected check to fail with a wrong password")
	}
}

func TestHashesAreSalted(t *testing.T) {
	h1, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	h2, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	if h1 == h2 {
		t.Fatal("two hashes of the same password should differ")
	}
}
