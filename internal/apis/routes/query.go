package routes

import (
	"log"

	"querygen-ai/internal/di"

	"github.com/gin-gonic/gin"
)

func SetupQueryRoutes(router *gin.Engine) {
	queryHandler, err := di.GetQueryHandler()
	if err != nil {
		log.Fatalf("Failed to get query handler: %v", err)
	}

	queries := router.Group("/api/queries")
	{
		queries.POST("/generate", queryHandler.Generate)
	}
}
