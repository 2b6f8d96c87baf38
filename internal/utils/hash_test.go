package utils

import "testing"

func TestHashPassword_Deterministic(t *testing.T) {
	first := HashPassword("secret123")
	second := HashPassword("secret123")

	if first != second {
		t.Errorf("expected identical digests, got %q and %q", first, second)
	}
}

func TestHashPassword_KnownDigest(t *testing.T) {
	// md5("abc") is a well-known vector.
	got := HashPassword("abc")
	want := "900150983cd24fb0d6963f7d28e17f72"

	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestHashPassword_EmptyInput(t *testing.T) {
	got := HashPassword("")
	want := "d41d8cd98f00b204e9800998ecf8427e"

	if got != want {
		t.Errorf("expected %q for empty input, got %q", want, got)
	}
}

func TestHashPassword_DistinctInputs(t *testing.T) {
	if HashPassword("user1") == HashPassword("user2") {
		t.Error("different inputs must not collide trivially")
	}
}
