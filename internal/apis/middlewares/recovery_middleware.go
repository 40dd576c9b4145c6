package middlewares

import (
	"fmt"
	"net/http"

	"querygen-ai/internal/apis/dtos"

	"github.com/gin-gonic/gin"
)

func CustomRecoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		errorMsg := fmt.Sprintf("internal server error: %v", recovered)
		c.JSON(http.StatusInternalServerError, dtos.Response{
			Success: false,
			Error:   &errorMsg,
		})
	})
}
