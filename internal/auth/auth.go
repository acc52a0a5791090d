package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/google/uuid"
)

// ErrInvalidCode is returned when the admin code does not match.
var ErrInvalidCode = errors.New("invalid admin code")

// Verifier issues and checks admin bearer tokens. Tokens are stateless: a
// random nonce signed with the server secret, so a restart does not log
// anyone out.
type Verifier struct {
	adminCode string
	secret    []byte
}

// New creates a Verifier from the configured admin code and signing secret.
func New(adminCode, secret string) *Verifier {
	return &Verifier{adminCode: adminCode, secret: []byte(secret)}
}

// Login exchanges the admin code for a bearer token.
func (v *Verifier) Login(code string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(code), []byte(v.adminCode)) != 1 {
		return "", ErrInvalidCode
	}
	nonce := uuid.NewString()
	return nonce + "." + v.sign(nonce), nil
}

// Verify reports whether token is a valid admin token.
func (v *Verifier) Verify(token string) bool {
	nonce, sig, ok := strings.Cut(token, ".")
	if !ok || nonce == "" {
		return false
	}
	expected := v.sign(nonce)
	return hmac.Equal([]byte(sig), []byte(expected))
}

func (v *Verifier) sign(nonce string) string {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(nonce))
	return hex.EncodeToString(mac.Sum(nil))
}
