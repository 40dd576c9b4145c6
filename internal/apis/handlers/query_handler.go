package handlers

import (
	"net/http"

	"querygen-ai/internal/apis/dtos"
	"querygen-ai/internal/services"

	"github.com/gin-gonic/gin"
)

type QueryHandler struct {
	queryService services.QueryService
}

func NewQueryHandler(queryService services.QueryService) *QueryHandler {
	return &QueryHandler{
		queryService: queryService,
	}
}

func (h *QueryHandler) Generate(c *gin.Context) {
	var req dtos.GenerateQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorMsg := err.Error()
		c.JSON(http.StatusBadRequest, dtos.Response{
			Success: false,
			Error:   &errorMsg,
		})
		return
	}

	response, statusCode, err := h.queryService.Generate(c.Request.Context(), req.UserInput)
	if err != nil {
		errorMsg := err.Error()
		c.JSON(int(statusCode), dtos.Response{
			Success: false,
			Error:   &errorMsg,
		})
		return
	}

	c.JSON(int(statusCode), dtos.Response{
		Success: true,
		Data:    response,
	})
}
