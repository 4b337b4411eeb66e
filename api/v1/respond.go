package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-backend/errs"
	"gorm.io/gorm"
)

// respondData writes the standard success envelope
func respondData(ctx *gin.Context, code int, data interface{}) {
	ctx.JSON(code, gin.H{
		"status": "success",
		"data":   data,
	})
}

// respondMessage writes a success envelope with only a message
func respondMessage(ctx *gin.Context, code int, message string) {
	ctx.JSON(code, gin.H{
		"status":  "success",
		"message": message,
	})
}

// respondError maps the error taxonomy onto HTTP: validation failures carry
// their field map at 422, missing records 404, everything else 500.
func respondError(ctx *gin.Context, err error) {
	var ve *errs.ValidationError
	if errors.As(err, &ve) {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": "error",
			"errors": ve.Fields,
		})
		return
	}

	if errors.Is(err, errs.ErrNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Not found",
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, gin.H{
		"status":  "error",
		"message": err.Error(),
	})
}

// parseID reads the numeric :id route parameter
func parseID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Not found",
		})
		return 0, false
	}
	return uint(id), true
}
