package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"io"
	"strconv"
	"strings"
	"time"
)

// HMACAuth HMAC-SHA256 authenticator
type HMACAuth struct {
	SecretKey []byte
}

// Sign generates a signature expiring at the given Unix timestamp,
// 0 means no expiry
func (auth HMACAuth) Sign(body string, expires int64) string {
	h := hmac.New(sha256.New, auth.SecretKey)
	expireTimeStamp := strconv.FormatInt(expires, 10)
	_, err := io.WriteString(h, body+":"+expireTimeStamp)
	if err != nil {
		return ""
	}

	return base64.URLEncoding.EncodeToString(h.Sum(nil)) + ":" + expireTimeStamp
}

// Check validates the body against the signature, including expiry
func (auth HMACAuth) Check(body string, sign string) error {
	signSlice := strings.Split(sign, ":")
	// expires field not carried
	if signSlice[len(signSlice)-1] == "" {
		return ErrExpiresMissing
	}

	expires, err := strconv.ParseInt(signSlice[len(signSlice)-1], 10, 64)
	if err != nil {
		return ErrAuthFailed.WithError(err)
	}
	if expires < time.Now().Unix() && expires != 0 {
		return ErrExpired
	}

	if !hmac.Equal([]byte(auth.Sign(body, expires)), []byte(sign)) {
		return ErrAuthFailed
	}
	return nil
}
