package utils

import (
	"testing"
	"time"
)

func TestTokenManager_IssueAndParse(t *testing.T) {
	tm := NewTokenManager("test-sign-key", "movieapp")

	tokenString, err := tm.Issue("Jane Doe", 42, "janedoe", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tokenString == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := tm.Parse(tokenString)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if claims.UserFullName != "Jane Doe" {
		t.Errorf("expected full name claim, got %q", claims.UserFullName)
	}
	if claims.UserID != "42" {
		t.Errorf("expected userId claim \"42\", got %q", claims.UserID)
	}
	if claims.Username != "janedoe" {
		t.Errorf("expected username claim, got %q", claims.Username)
	}

	id, err := claims.CallerID()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 42 {
		t.Errorf("expected caller id 42, got %d", id)
	}
}

func TestTokenManager_EmptyNameParts(t *testing.T) {
	tm := NewTokenManager("test-sign-key", "movieapp")

	// a user with no first/last name still gets a token; the full-name
	// claim degrades to a single joining space
	tokenString, err := tm.Issue(" ", 7, "nameless", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := tm.Parse(tokenString)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserFullName != " " {
		t.Errorf("expected single-space full name, got %q", claims.UserFullName)
	}
}

func TestTokenManager_WrongKeyRejected(t *testing.T) {
	issuer := NewTokenManager("correct-key", "movieapp")
	verifier := NewTokenManager("wrong-key", "movieapp")

	tokenString, err := issuer.Issue("Jane Doe", 1, "janedoe", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := verifier.Parse(tokenString); err == nil {
		t.Fatal("expected verification failure with wrong key")
	}
}

func TestTokenManager_WrongIssuerRejected(t *testing.T) {
	issuer := NewTokenManager("key", "movieapp")
	verifier := NewTokenManager("key", "noteapp")

	tokenString, err := issuer.Issue("Jane Doe", 1, "janedoe", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := verifier.Parse(tokenString); err == nil {
		t.Fatal("expected verification failure with wrong issuer")
	}
}

func TestTokenManager_ExpiredRejected(t *testing.T) {
	tm := NewTokenManager("key", "movieapp")

	tokenString, err := tm.Issue("Jane Doe", 1, "janedoe", -time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := tm.Parse(tokenString); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestTokenManager_ZeroTTLRejected(t *testing.T) {
	tm := NewTokenManager("key", "movieapp")

	if _, err := tm.Issue("Jane Doe", 1, "janedoe", 0); err == nil {
		t.Fatal("expected error for zero ttl")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"missing token", "Bearer", "", true},
		{"empty token", "Bearer ", "", true},
		{"empty header", "", "", true},
		{"no scheme", "abc.def.ghi", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.header)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
