package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/laundrypro-api/internal/application/store"
)

// HealthHandler answers liveness and backend connection checks
type HealthHandler struct {
	appName string
	store   *store.Store
}

func NewHealthHandler(appName string, st *store.Store) *HealthHandler {
	return &HealthHandler{appName: appName, store: st}
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": h.appName,
		"backend": h.store.Backend(),
	})
}

// Backend pings the configured remote and the local store. It answers 200
// while either store can serve requests.
func (h *HealthHandler) Backend(c *gin.Context) {
	status := h.store.Ping(c.Request.Context())
	code := http.StatusOK
	if !status.RemoteOK && !status.LocalOK {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
