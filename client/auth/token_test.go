package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, expiry time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "operator",
		ExpiresAt: jwt.NewNumericDate(expiry),
	})
	signed, err := token.SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestExpiresAtReadsClaimWithoutVerifying(t *testing.T) {
	expiry := time.Now().Add(time.Hour).Truncate(time.Second)
	s := NewTokenSource(signedToken(t, expiry))

	got, err := s.ExpiresAt()
	if err != nil {
		t.Fatalf("expires at: %v", err)
	}
	if !got.Equal(expiry) {
		t.Fatalf("expiry = %v, want %v", got, expiry)
	}
}

func TestExpiresAtErrors(t *testing.T) {
	if _, err := NewTokenSource("").ExpiresAt(); err == nil {
		t.Fatal("expected error for empty token")
	}
	if _, err := NewTokenSource("not-a-jwt").ExpiresAt(); err == nil {
		t.Fatal("expected error for malformed token")
	}

	noExpiry := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "operator"})
	signed, err := noExpiry.SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	if _, err := NewTokenSource(signed).ExpiresAt(); err == nil {
		t.Fatal("expected error for token without expiry")
	}
}

func TestSetTokenReplacesToken(t *testing.T) {
	s := NewTokenSource("first")
	s.SetToken("second")
	if s.Token() != "second" {
		t.Fatalf("token = %q", s.Token())
	}
}

func TestCredentialsAttachBearerToken(t *testing.T) {
	creds := Credentials{Source: NewTokenSource("abc123")}

	md, err := creds.GetRequestMetadata(context.Background())
	if err != nil {
		t.Fatalf("get request metadata: %v", err)
	}
	if md["authorization"] != "Bearer abc123" {
		t.Fatalf("authorization = %q", md["authorization"])
	}
	if creds.RequireTransportSecurity() {
		t.Fatal("robot links do not require transport security")
	}
}

func TestCredentialsOmitHeaderWhenUnauthenticated(t *testing.T) {
	creds := Credentials{Source: NewTokenSource("")}

	md, err := creds.GetRequestMetadata(context.Background())
	if err != nil {
		t.Fatalf("get request metadata: %v", err)
	}
	if md != nil {
		t.Fatalf("expected no metadata, got %v", md)
	}
}
