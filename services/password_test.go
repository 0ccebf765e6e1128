package services

import (
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		hash, err := HashPassword("pw123")
		if err != nil {
			t.Fatalf("HashPassword failed: %v", err)
		}

		match, err := VerifyPassword(hash, "pw123")
		if err != nil {
			t.Fatalf("VerifyPassword failed: %v", err)
		}
		if !match {
			t.Error("expected password to verify against its own hash")
		}
	})

	t.Run("SaltRandomization", func(t *testing.T) {
		first, err := HashPassword("same-password")
		if err != nil {
			t.Fatalf("HashPassword failed: %v", err)
		}
		second, err := HashPassword("same-password")
		if err != nil {
			t.Fatalf("HashPassword failed: %v", err)
		}

		if first == second {
			t.Error("two hashes of the same password should differ")
		}
		if !ComparePasswords(first, "same-password") || !ComparePasswords(second, "same-password") {
			t.Error("both hashes should verify the original password")
		}
	})

	t.Run("WrongPassword", func(t *testing.T) {
		hash, err := HashPassword("correct-password")
		if err != nil {
			t.Fatalf("HashPassword failed: %v", err)
		}

		if ComparePasswords(hash, "wrong-password") {
			t.Error("wrong password should not verify")
		}
	})

	t.Run("EmptyPassword", func(t *testing.T) {
		if _, err := HashPassword(""); err == nil {
			t.Error("expected error for empty password")
		}
	})

	t.Run("HashFormat", func(t *testing.T) {
		hash, err := HashPassword("pw123")
		if err != nil {
			t.Fatalf("HashPassword failed: %v", err)
		}
		if len(strings.Split(hash, "$")) != 2 {
			t.Errorf("expected salt$hash format, got %q", hash)
		}
	})
}

func TestVerifyPasswordMalformed(t *testing.T) {
	malformed := []string{
		"",
		"no-separator",
		"too$many$parts",
		"!!!not-base64!!!$AAAA",
		"AAAA$!!!not-base64!!!",
	}

	for _, stored := range malformed {
		if ComparePasswords(stored, "whatever") {
			t.Errorf("malformed digest %q should verify false", stored)
		}
	}
}
