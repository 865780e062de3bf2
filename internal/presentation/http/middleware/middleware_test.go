package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/laundrypro-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryKeys struct {
	mu   sync.Mutex
	keys map[string]*entity.IdempotencyKey
}

func (m *memoryKeys) GetByKey(_ context.Context, key string) (*entity.IdempotencyKey, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.keys[key], nil
}

func (m *memoryKeys) Create(_ context.Context, ikey *entity.IdempotencyKey) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keys[ikey.Key] = ikey
	return nil
}

func (m *memoryKeys) DeleteExpired(context.Context) error {
	return nil
}

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl := NewClientRateLimiter(NewRateLimiterConfig(2, 60))
	defer rl.Stop()

	router := gin.New()
	router.Use(rl.Middleware())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 3)
	for i := range codes {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		codes[i] = w.Code
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestIdempotency_ReplaysSuccessOnly(t *testing.T) {
	gin.SetMode(gin.TestMode)
	keys := &memoryKeys{keys: map[string]*entity.IdempotencyKey{}}

	calls := 0
	router := gin.New()
	router.POST("/orders", Idempotency(IdempotencyConfig{Repo: keys}), func(c *gin.Context) {
		calls++
		if strings.Contains(c.GetHeader("X-Fail"), "yes") {
			c.JSON(http.StatusServiceUnavailable, gin.H{"success": false})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"call": calls})
	})

	post := func(key, fail string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{"customer_name":"Ana"}`))
		req.Header.Set(IdempotencyKeyHeader, key)
		req.Header.Set("X-Fail", fail)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	failed := post("k1", "yes")
	assert.Equal(t, http.StatusServiceUnavailable, failed.Code)

	first := post("k1", "")
	require.Equal(t, http.StatusCreated, first.Code)
	assert.JSONEq(t, `{"call":2}`, first.Body.String())

	replay := post("k1", "")
	assert.Equal(t, http.StatusCreated, replay.Code)
	assert.JSONEq(t, `{"call":2}`, replay.Body.String())
	assert.Equal(t, "true", replay.Header().Get("X-Idempotency-Replayed"))
	assert.Equal(t, 2, calls)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 3, calls)
}
