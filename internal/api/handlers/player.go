package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shivaram19/gorbagana-plinko/internal/store"
)

// GetPlayerStats returns lifetime totals for a wallet.
func GetPlayerStats(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := st.PlayerStats(c.Request.Context(), c.Param("address"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"stats": stats})
	}
}
