package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthCheck reports service liveness
func HealthCheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
