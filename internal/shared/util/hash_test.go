package util

import "testing"

func TestHashUserKeyStable(t *testing.T) {
	a := HashUserKey("user-1")
	b := HashUserKey("user-1")
	if a != b {
		t.Fatalf("expected stable hash, got %s vs %s", a, b)
	}
	if a == HashUserKey("user-2") {
		t.Fatalf("expected different users to hash differently")
	}
	if len(a) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(a))
	}
}

func TestSanitizeFileName(t *testing.T) {
	if _, err := SanitizeFileName("../../etc/passwd"); err == nil {
		t.Fatalf("expected traversal rejection")
	}
	got, err := SanitizeFileName("my resume/v2.pdf")
	if err != nil {
		t.Fatalf("sanitize: %v", err)
	}
	if got != "my resume_v2.pdf" {
		t.Fatalf("unexpected sanitized name: %s", got)
	}
}
