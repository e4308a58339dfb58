package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shivaram19/gorbagana-plinko/internal/auth"
)

// WalletKey is the gin context key holding the authenticated wallet address.
const WalletKey = "wallet_address"

// RequireWallet validates the bearer JWT and sets WalletKey. WebSocket clients
// cannot set headers, so a ?token= query parameter is accepted as well.
func RequireWallet(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ""
		if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
			token = strings.TrimPrefix(h, "Bearer ")
		} else {
			token = c.Query("token")
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}

		wallet, err := auth.ParseToken(secret, token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(WalletKey, wallet)
		c.Next()
	}
}

// Wallet returns the wallet set by RequireWallet.
func Wallet(c *gin.Context) string {
	return c.GetString(WalletKey)
}
