package auth

import (
	"testing"
	"time"
)

func TestHS256RoundTrip(t *testing.T) {
	claims := Claims{
		Sub:       "user-1",
		CompanyID: "co-1",
		Role:      "owner",
		Iat:       time.Now().Unix(),
		Exp:       time.Now().Add(1 * time.Hour).Unix(),
	}
	secret := "test-secret"

	token, err := SignHS256(claims, secret)
	if err != nil {
		t.Fatalf("SignHS256 failed: %v", err)
	}
	parsed, err := ParseAndVerifyHS256(token, secret)
	if err != nil {
		t.Fatalf("ParseAndVerifyHS256 failed: %v", err)
	}
	if parsed.Sub != claims.Sub || parsed.CompanyID != claims.CompanyID || parsed.Role != claims.Role {
		t.Fatalf("claims mismatch: got %+v", parsed)
	}
	if _, err := ParseAndVerifyHS256(token, "wrong-secret"); err == nil {
		t.Fatal("expected verification error with wrong secret")
	}
}

func TestHS256RejectsExpired(t *testing.T) {
	claims := Claims{
		Sub:       "user-2",
		CompanyID: "co-2",
		Role:      "dispatcher",
		Iat:       time.Now().Add(-2 * time.Hour).Unix(),
		Exp:       time.Now().Add(-1 * time.Hour).Unix(),
	}
	token, err := SignHS256(claims, "s")
	if err != nil {
		t.Fatalf("SignHS256 failed: %v", err)
	}
	if _, err := ParseAndVerifyHS256(token, "s"); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestHS256RejectsMalformed(t *testing.T) {
	for _, tok := range []string{"", "a.b", "a.b.c.d", "not-a-token"} {
		if _, err := ParseAndVerifyHS256(tok, "s"); err == nil {
			t.Fatalf("expected error for %q", tok)
		}
	}
}
