package auth

import (
	"testing"
	"time"
)

func TestIssueAndParse(t *testing.T) {
	token, exp, err := Issue("S1001", "student", "sis-test", "secret", time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if exp.Before(time.Now()) {
		t.Fatalf("expiry in the past: %v", exp)
	}
	claims, err := Parse(token, "secret", "sis-test")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Subject != "S1001" || claims.Role != "student" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestParseRejectsWrongKey(t *testing.T) {
	token, _, err := Issue("S1001", "student", "sis-test", "secret", time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := Parse(token, "other-secret", "sis-test"); err == nil {
		t.Fatal("expected error for wrong key")
	}
}

func TestParseRejectsWrongIssuer(t *testing.T) {
	token, _, err := Issue("admin@sis.edu", "admin", "someone-else", "secret", time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := Parse(token, "secret", "sis-test"); err == nil {
		t.Fatal("expected error for issuer mismatch")
	}
}

func TestParseRejectsExpired(t *testing.T) {
	token, _, err := Issue("S1001", "student", "sis-test", "secret", -time.Minute)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := Parse(token, "secret", "sis-test"); err == nil {
		t.Fatal("expected error for expired token")
	}
}
