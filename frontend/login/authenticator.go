package login

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"tecnoreparos/infrastructure/argon"
)

// ErrInvalidCredentials is the single failure mode of the mock auth
// boundary; every rejected pair maps to the same fixed message.
var ErrInvalidCredentials = errors.New("invalid credentials")

// InvalidCredentialsMessage is shown inline on the login screen.
const InvalidCredentialsMessage = "Usuário ou senha inválidos. (tente: tecnico / 123)"

// Authenticator checks the one recognized credential pair. The password is
// argon2id-hashed at construction so the plaintext never sticks around in
// process memory; nothing is ever written to storage.
type Authenticator struct {
	username     string
	passwordHash string
}

func NewAuthenticator(username, password string) (*Authenticator, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errors.New("login username is required")
	}
	hash, err := argon.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash login password: %w", err)
	}
	return &Authenticator{username: username, passwordHash: hash}, nil
}

// Authenticate returns ErrInvalidCredentials for every pair other than the
// recognized one.
func (a *Authenticator) Authenticate(username, password string) error {
	usernameOK := subtle.ConstantTimeCompare([]byte(strings.TrimSpace(username)), []byte(a.username)) == 1
	passwordOK, err := argon.Verify(password, a.passwordHash)
	if err != nil {
		return ErrInvalidCredentials
	}
	if !usernameOK || !passwordOK {
		return ErrInvalidCredentials
	}
	return nil
}
