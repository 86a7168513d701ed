package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skybox-app/skybox/pkg/conf"
)

func TestSession(t *testing.T) {
	asserts := assert.New(t)

	// test mode never dials Redis, even when one is configured
	conf.RedisConfig.Server = "127.0.0.1:6379"
	defer func() { conf.RedisConfig.Server = "" }()

	handler := Session("test-secret")
	asserts.NotNil(handler)
	asserts.NotNil(Store)
}
