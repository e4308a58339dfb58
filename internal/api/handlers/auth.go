package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shivaram19/gorbagana-plinko/internal/auth"
	"github.com/shivaram19/gorbagana-plinko/internal/config"
	"github.com/shivaram19/gorbagana-plinko/internal/store"
)

// loginMessageMaxAge is how old a signed login message may be.
const loginMessageMaxAge = 5 * time.Minute

// GetLoginMessage returns the message a wallet must sign to log in.
func GetLoginMessage(c *gin.Context) {
	wallet := strings.TrimSpace(c.Query("wallet"))
	if _, err := auth.PublicKey(wallet); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "valid wallet required"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": auth.LoginMessage(wallet, time.Now())})
}

// Login verifies a wallet signature over a login message, records the player
// and issues a session JWT.
func Login(st store.Store, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			WalletAddress string `json:"wallet_address"`
			Message       string `json:"message"`
			Signature     string `json:"signature"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "wallet_address, message and signature required"})
			return
		}
		wallet := strings.TrimSpace(req.WalletAddress)
		if wallet == "" || req.Message == "" || req.Signature == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "wallet_address, message and signature required"})
			return
		}

		now := time.Now()
		if err := auth.CheckMessage(req.Message, wallet, now, loginMessageMaxAge); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		if err := auth.VerifySignature(wallet, req.Message, req.Signature); err != nil {
			log.Printf("[AUTH] Signature rejected for %s: %v", wallet, err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
			return
		}

		player, err := st.UpsertPlayer(c.Request.Context(), wallet)
		if err != nil {
			respondError(c, err)
			return
		}

		token, expiresAt, err := auth.IssueToken(cfg.JWTSecret, wallet, now, cfg.SessionTimeout())
		if err != nil {
			log.Printf("[AUTH] Failed to sign token for %s: %v", wallet, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		log.Printf("[AUTH] %s logged in", wallet)
		c.JSON(http.StatusOK, gin.H{
			"token":      token,
			"expires_at": expiresAt.Format(time.RFC3339),
			"player":     player,
		})
	}
}
