package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getHome reports the API status.
func getHome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Warikan backend API v1"})
}
