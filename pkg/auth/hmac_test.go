package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHMACAuth_Sign(t *testing.T) {
	asserts := assert.New(t)
	auth := HMACAuth{SecretKey: []byte("secret")}

	sign := auth.Sign("content", 0)
	asserts.NotEmpty(sign)
	asserts.Equal(sign, auth.Sign("content", 0))
	asserts.NotEqual(sign, auth.Sign("other", 0))
}

func TestHMACAuth_Check(t *testing.T) {
	asserts := assert.New(t)
	auth := HMACAuth{SecretKey: []byte("secret")}

	// no expiry
	sign := auth.Sign("content", 0)
	asserts.NoError(auth.Check("content", sign))

	// valid expiry
	expires := time.Now().Unix() + 60
	sign = auth.Sign("content", expires)
	asserts.NoError(auth.Check("content", sign))

	// expired
	sign = auth.Sign("content", time.Now().Unix()-1)
	asserts.Equal(ErrExpired, auth.Check("content", sign))

	// tampered body
	sign = auth.Sign("content", 0)
	asserts.Equal(ErrAuthFailed, auth.Check("tampered", sign))

	// malformed signature
	asserts.Error(auth.Check("content", "not-base64:abc"))
	asserts.Equal(ErrExpiresMissing, auth.Check("content", ""))

	// wrong key
	other := HMACAuth{SecretKey: []byte("other")}
	sign = other.Sign("content", 0)
	asserts.Equal(ErrAuthFailed, auth.Check("content", sign))
}
