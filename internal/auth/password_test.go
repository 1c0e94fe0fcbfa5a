package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass", 4)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("hash must not equal the plaintext password")
	}

	if !CheckPassword(hash, "s3cret-pass") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "wrong-pass") {
		t.Error("wrong password accepted")
	}
	if CheckPassword(hash, "") {
		t.Error("empty password accepted")
	}
}

func TestHashPasswordSaltsPerCall(t *testing.T) {
	h1, err := HashPassword("same-password", 4)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	h2, err := HashPassword("same-password", 4)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same password should differ (per-hash salt)")
	}
}

func TestHashPasswordDefaultCost(t *testing.T) {
	hash, err := HashPassword("pw", 0)
	if err != nil {
		t.Fatalf("HashPassword with zero cost failed: %v", err)
	}
	if !CheckPassword(hash, "pw") {
		t.Error("hash with default cost does not verify")
	}
}
