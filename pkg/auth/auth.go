package auth

import (
	"fmt"
	"strings"

	"github.com/skybox-app/skybox/pkg/conf"
	"github.com/skybox-app/skybox/pkg/serializer"
)

var (
	// ErrAuthFailed signature mismatch
	ErrAuthFailed = serializer.NewError(serializer.CodeNoPermissionErr, "Invalid signature", nil)
	// ErrAuthHeaderMissing no authorization header carried
	ErrAuthHeaderMissing = serializer.NewError(serializer.CodeNoPermissionErr, "Authorization header missing", nil)
	// ErrExpired signature expired
	ErrExpired = serializer.NewError(serializer.CodeSignExpired, "Signature expired", nil)
	// ErrExpiresMissing expire timestamp missing from signature
	ErrExpiresMissing = serializer.NewError(serializer.CodeNoPermissionErr, "Expire timestamp missing", nil)
)

// General authenticator for identity-provider assertions
var General Auth

// Auth signs and checks request bodies
type Auth interface {
	// Sign generates a signature for the given body, expires is a Unix
	// timestamp, 0 means never
	Sign(body string, expires int64) string
	// Check validates body against sign, including the expiry check
	Check(body string, sign string) error
}

// Init builds the general authenticator from config
func Init() {
	General = HMACAuth{
		SecretKey: []byte(conf.IdentityConfig.ProviderSecret),
	}
}

// SignAssertion signs an identity assertion for subject/email pairs.
// Used by tests and by the provider-side tooling.
func SignAssertion(instance Auth, subject, email string, expires int64) string {
	return instance.Sign(AssertionBody(subject, email), expires)
}

// CheckAssertion validates a provider assertion token of the form
// subject:email:signature
func CheckAssertion(instance Auth, token string) (subject, email string, err error) {
	parts := strings.SplitN(token, ":", 3)
	if len(parts) != 3 {
		return "", "", ErrAuthFailed
	}

	if err := instance.Check(AssertionBody(parts[0], parts[1]), parts[2]); err != nil {
		return "", "", err
	}
	return parts[0], parts[1], nil
}

// AssertionBody canonical signed content of an identity assertion
func AssertionBody(subject, email string) string {
	return fmt.Sprintf("identity|%s|%s", subject, email)
}
