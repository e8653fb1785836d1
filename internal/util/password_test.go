package util

import "testing"

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if hash == "correct horse battery staple" {
		t.Fatal("hash must not equal the plaintext")
	}

	if !CheckPassword("correct horse battery staple", hash) {
		t.Error("CheckPassword() = false for the original password, want true")
	}

	if CheckPassword("wrong password", hash) {
		t.Error("CheckPassword() = true for a different password, want false")
	}
}

func TestHashPasswordSaltedPerCall(t *testing.T) {
	h1, err := HashPassword("pw1")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	h2, err := HashPassword("pw1")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if h1 == h2 {
		t.Error("two hashes of the same password are identical, want different salts")
	}

	if !CheckPassword("pw1", h1) || !CheckPassword("pw1", h2) {
		t.Error("both digests should verify against the original password")
	}
}

func TestCheckPasswordMalformedDigest(t *testing.T) {
	if CheckPassword("anything", "not-a-bcrypt-digest") {
		t.Error("CheckPassword() = true for a malformed digest, want false")
	}
	if CheckPassword("anything", "") {
		t.Error("CheckPassword() = true for an empty digest, want false")
	}
}
