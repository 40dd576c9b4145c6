package dtos

import "querygen-ai/internal/models"

type GenerateQueryRequest struct {
	UserInput string `json:"user_input" binding:"required"`
}

type GenerateQueryResponse struct {
	SQL string `json:"sql"`
	// Intent echoes the structured query the SQL was rendered from, so
	// callers can inspect what the extraction stage understood.
	Intent *models.Query `json:"intent,omitempty"`
}
