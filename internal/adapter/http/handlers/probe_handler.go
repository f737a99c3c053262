package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Home returns a plain-text greeting identifying the service.
func Home(c *gin.Context) {
	c.String(http.StatusOK, "Hello from the payments service")
}

// Readiness reports whether the server is ready to receive requests. The
// service has no external dependencies on the default path, so it always is.
func Readiness(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// Liveness reports whether the server is healthy and serving requests.
// Placeholder: no internal health evaluation is performed.
func Liveness(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}
