package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type CorsHandler struct{}

func NewCorsHandler() *CorsHandler {
	return &CorsHandler{}
}

func (h *CorsHandler) CorsMiddleware(c *gin.Context) {
	c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
	c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
	c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	if c.Request.Method == http.MethodOptions {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}
	c.Next()
}
