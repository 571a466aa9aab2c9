// Package auth gates mutation requests. The catalog deliberately has no
// user accounts; authorization is a single injected predicate so a real
// identity system can replace it without touching workflow code.
package auth

import "crypto/subtle"

// Action names the mutation being attempted.
type Action string

const (
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Authorizer decides whether a mutation may proceed given the secret
// submitted with the form.
type Authorizer interface {
	Authorize(action Action, submitted string) bool
}

// SharedSecret authorizes any action whose submitted secret matches one
// process-wide constant. This is a placeholder access control, not a
// security boundary.
type SharedSecret struct {
	secret []byte
}

// NewSharedSecret builds an Authorizer around the configured passphrase.
func NewSharedSecret(secret string) *SharedSecret {
	return &SharedSecret{secret: []byte(secret)}
}

// Authorize compares in constant time; the action is ignored.
func (a *SharedSecret) Authorize(_ Action, submitted string) bool {
	return subtle.ConstantTimeCompare(a.secret, []byte(submitted)) == 1
}
