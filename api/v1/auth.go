package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-backend/dto"
	"github.com/portfolio-backend/services"
)

// Login authenticates the admin account
func Login(ctx *gin.Context) {
	var request dto.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondError(ctx, dto.CollectFieldErrors(err, request))
		return
	}

	response, err := services.Login(request)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": err.Error(),
		})
		return
	}
	respondData(ctx, http.StatusOK, response)
}

// GetCurrentUser returns the authenticated admin account
func GetCurrentUser(ctx *gin.Context) {
	userID := ctx.GetUint("userId")

	user, err := services.GetUser(userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, user)
}
