package login

import (
	"errors"
	"testing"
)

func TestAuthenticateRecognizedPair(t *testing.T) {
	auth, err := NewAuthenticator("tecnico", "123")
	if err != nil {
		t.Fatalf("new authenticator: %v", err)
	}
	if err := auth.Authenticate("tecnico", "123"); err != nil {
		t.Fatalf("recognized pair rejected: %v", err)
	}
}

func TestAuthenticateRejectsEveryOtherPair(t *testing.T) {
	auth, err := NewAuthenticator("tecnico", "123")
	if err != nil {
		t.Fatalf("new authenticator: %v", err)
	}

	cases := []struct {
		name     string
		username string
		password string
	}{
		{name: "wrong password", username: "tecnico", password: "1234"},
		{name: "wrong username", username: "admin", password: "123"},
		{name: "both wrong", username: "admin", password: "admin"},
		{name: "empty pair", username: "", password: ""},
		{name: "password as username", username: "123", password: "tecnico"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := auth.Authenticate(tc.username, tc.password)
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestNewAuthenticatorRequiresUsernameAndPassword(t *testing.T) {
	if _, err := NewAuthenticator("", "123"); err == nil {
		t.Fatalf("expected error for empty username")
	}
	if _, err := NewAuthenticator("tecnico", "  "); err == nil {
		t.Fatalf("expected error for blank password")
	}
}
