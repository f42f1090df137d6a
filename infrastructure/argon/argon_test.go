package argon

import (
	"strings"
	"testing"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := HashPassword("123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	ok, err := Verify("123", hash)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !ok {
		t.Fatalf("correct password rejected")
	}

	ok, err = Verify("wrong", hash)
	if err != nil {
		t.Fatalf("verify wrong: %v", err)
	}
	if ok {
		t.Fatalf("wrong password accepted")
	}
}

func TestHashRejectsBlankPassword(t *testing.T) {
	if _, err := HashPassword("   "); err == nil {
		t.Fatalf("expected error for blank password")
	}
}

func TestVerifyRejectsMalformedHash(t *testing.T) {
	for _, bad := range []string{"", "plaintext", "$argon2id$v=19$garbage"} {
		if _, err := Verify("123", bad); err == nil {
			t.Fatalf("expected error for malformed hash %q", bad)
		}
	}
}

func TestVerifyRejectsForeignArgon2Version(t *testing.T) {
	hash, err := HashPassword("123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	downgraded := strings.Replace(hash, "$v=19$", "$v=18$", 1)
	if downgraded == hash {
		t.Fatalf("hash did not carry the expected version marker")
	}
	if _, err := Verify("123", downgraded); err == nil {
		t.Fatalf("expected error for argon2 version mismatch")
	}
}
