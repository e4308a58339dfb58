package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shivaram19/gorbagana-plinko/internal/auth"
	"github.com/shivaram19/gorbagana-plinko/internal/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func walletRouter(secret string) *gin.Engine {
	r := gin.New()
	r.GET("/me", RequireWallet(secret), func(c *gin.Context) {
		c.String(http.StatusOK, Wallet(c))
	})
	return r
}

func TestRequireWalletHeader(t *testing.T) {
	token, _, err := auth.IssueToken("secret", "wallet1", time.Now(), time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	walletRouter("secret").ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "wallet1", w.Body.String())
}

func TestRequireWalletQuery(t *testing.T) {
	token, _, err := auth.IssueToken("secret", "wallet1", time.Now(), time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	walletRouter("secret").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me?token="+token, nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireWalletRejects(t *testing.T) {
	w := httptest.NewRecorder()
	walletRouter("secret").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, _, err := auth.IssueToken("other", "wallet1", time.Now(), time.Hour)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	walletRouter("secret").ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWebSocketCORSCheck(t *testing.T) {
	cfg := &config.Config{Environment: "production", FrontendURL: "https://plinko.example"}
	r := gin.New()
	r.GET("/ws", WebSocketCORSCheck(cfg), func(c *gin.Context) { c.Status(http.StatusOK) })

	upgrade := func(origin string) int {
		req := httptest.NewRequest(http.MethodGet, "/ws", nil)
		req.Header.Set("Connection", "Upgrade")
		req.Header.Set("Upgrade", "websocket")
		if origin != "" {
			req.Header.Set("Origin", origin)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, upgrade("https://plinko.example"))
	assert.Equal(t, http.StatusForbidden, upgrade("http://localhost:5173"))
	assert.Equal(t, http.StatusBadRequest, upgrade(""))
}

func TestAllowedOrigins(t *testing.T) {
	dev := AllowedOrigins(&config.Config{Environment: "development", FrontendURL: "http://localhost:5173"})
	assert.Equal(t, devOrigins, dev)

	prod := AllowedOrigins(&config.Config{Environment: "production", FrontendURL: "https://plinko.example"})
	assert.Equal(t, []string{"https://plinko.example"}, prod)
}
