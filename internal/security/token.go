// Package security keeps forge credentials out of logs and error output.
package security

import (
	"fmt"
	"os"
	"strings"
)

const (
	minTokenLengthForPartialMask = 8
	maskShowChars                = 4
	maskEmpty                    = "[empty]"
	maskRedacted                 = "[redacted]"
)

// SecureToken wraps a credential so that formatting it never prints the secret.
//
//	token := NewSecureToken("ghs_0123456789abcdefABCD")
//	fmt.Printf("%v", token) // [token:****ABCD]
type SecureToken struct {
	value string
}

// NewSecureToken creates a new SecureToken from a string value.
// Surrounding whitespace is trimmed; CI secrets frequently carry a trailing newline.
func NewSecureToken(token string) SecureToken {
	return SecureToken{value: strings.TrimSpace(token)}
}

// TokenFromEnv reads the named environment variable into a SecureToken.
func TokenFromEnv(name string) SecureToken {
	return NewSecureToken(os.Getenv(name))
}

// String implements fmt.Stringer and returns a masked representation.
func (t SecureToken) String() string {
	if t.value == "" {
		return maskEmpty
	}
	if len(t.value) < minTokenLengthForPartialMask {
		return maskRedacted
	}
	return fmt.Sprintf("[token:****%s]", t.value[len(t.value)-maskShowChars:])
}

// GoString implements fmt.GoStringer so %#v is masked too.
func (t SecureToken) GoString() string {
	return t.String()
}

// Value returns the raw token. Only pass it to an HTTP transport; never log it.
func (t SecureToken) Value() string {
	return t.value
}

// IsEmpty returns true if the token is empty.
func (t SecureToken) IsEmpty() bool {
	return t.value == ""
}
