package entities

import "fmt"

// legacyPlaceholder is the value shipped in old configuration templates.
// It is never a real credential.
const legacyPlaceholder = "<secret>"

// Secret is a credential that may be absent.
type Secret struct {
	value   string
	present bool
}

// NewSecret wraps a raw credential. Empty strings and the legacy placeholder
// produce an absent secret.
func NewSecret(value string) Secret {
	if value == "" || value == legacyPlaceholder {
		return Secret{}
	}
	return Secret{value: value, present: true}
}

// Present reports whether the secret holds a usable value.
func (s Secret) Present() bool { return s.present }

// Value returns the raw credential, or "" when absent.
func (s Secret) Value() string { return s.value }

// String never reveals the credential.
func (s Secret) String() string {
	if !s.present {
		return "<unset>"
	}
	return "<redacted>"
}

// RequireSecret fails with ErrMissingCredential when the secret is absent.
// Call it right before the privileged operation, not once at startup.
func RequireSecret(secret Secret, name string) error {
	if !secret.Present() {
		return fmt.Errorf("%s: %w", name, ErrMissingCredential)
	}
	return nil
}
