package service

import "testing"

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := NewBcryptHasher(4) // minimum cost keeps the test fast

	digest, err := h.Hash("s3cret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if digest == "s3cret" {
		t.Fatalf("digest must not equal the plaintext")
	}
	if !h.Verify("s3cret", digest) {
		t.Fatalf("expected digest to verify against its own input")
	}
}

func TestBcryptHasher_Mismatch(t *testing.T) {
	h := NewBcryptHasher(4)

	digest, err := h.Hash("right")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if h.Verify("wrong", digest) {
		t.Fatalf("different plaintext must not verify")
	}
}

func TestBcryptHasher_FreshSaltPerCall(t *testing.T) {
	h := NewBcryptHasher(4)

	first, err := h.Hash("same input")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	second, err := h.Hash("same input")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if first == second {
		t.Fatalf("two hashes of the same input must differ (fresh salt)")
	}
	if !h.Verify("same input", first) || !h.Verify("same input", second) {
		t.Fatalf("both digests must still verify")
	}
}

func TestBcryptHasher_GarbageDigest(t *testing.T) {
	h := NewBcryptHasher(0)
	if h.Verify("anything", "not-a-bcrypt-hash") {
		t.Fatalf("garbage digest must not verify")
	}
}
