package identity

import (
	"testing"
	"time"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := NewSessionToken(secret, "0xwallet", "client", time.Hour)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	claims, err := ParseSessionToken(secret, token)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if claims.Wallet != "0xwallet" || claims.Role != "client" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestSessionTokenWrongSecret(t *testing.T) {
	token, err := NewSessionToken([]byte("test-secret"), "0xwallet", "client", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ParseSessionToken([]byte("other-secret"), token); err == nil {
		t.Error("token verified under the wrong secret")
	}
}

func TestSessionTokenExpiry(t *testing.T) {
	secret := []byte("test-secret")

	token, err := NewSessionToken(secret, "0xwallet", "client", -time.Minute)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ParseSessionToken(secret, token); err == nil {
		t.Error("expired token verified")
	}
}

func TestSessionTokenGarbage(t *testing.T) {
	if _, err := ParseSessionToken([]byte("test-secret"), "not.a.token"); err == nil {
		t.Error("garbage token verified")
	}
}
