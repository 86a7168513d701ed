package routers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestPing(t *testing.T) {
	asserts := assert.New(t)
	gin.SetMode(gin.TestMode)
	router := InitRouter()

	rec := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/ping", nil)
	router.ServeHTTP(rec, req)

	asserts.Equal(200, rec.Code)
	asserts.Contains(rec.Body.String(), "pong")
}

func TestAuthRequiredRoutes(t *testing.T) {
	asserts := assert.New(t)
	gin.SetMode(gin.TestMode)
	router := InitRouter()

	// anonymous requests bounce off the login check
	rec := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/directory", nil)
	router.ServeHTTP(rec, req)

	asserts.Equal(200, rec.Code)
	asserts.Contains(rec.Body.String(), "\"code\":401")
}
