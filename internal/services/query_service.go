package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"querygen-ai/internal/apis/dtos"
	"querygen-ai/internal/constants"
	"querygen-ai/internal/models"
	"querygen-ai/internal/utils"
	"querygen-ai/pkg/llm"
)

// ErrEmptyInput is returned for blank user text before any network call is
// attempted.
var ErrEmptyInput = errors.New("empty user input")

// QueryService turns a natural-language request into a Snowflake SQL
// statement: structured extraction into a Query, then rendering through the
// SQL generation prompt.
type QueryService interface {
	Generate(ctx context.Context, userText string) (*dtos.GenerateQueryResponse, uint, error)
}

type queryService struct {
	llmClient     llm.Client
	referenceDate func() time.Time
	callTimeout   time.Duration
	maxRetries    int
	retryBackoff  time.Duration
}

func NewQueryService(llmClient llm.Client, referenceDate func() time.Time, callTimeout time.Duration, maxRetries int) QueryService {
	if referenceDate == nil {
		referenceDate = time.Now
	}
	if callTimeout <= 0 {
		callTimeout = 30 * time.Second
	}
	return &queryService{
		llmClient:     llmClient,
		referenceDate: referenceDate,
		callTimeout:   callTimeout,
		maxRetries:    maxRetries,
		retryBackoff:  500 * time.Millisecond,
	}
}

func (s *queryService) Generate(ctx context.Context, userText string) (*dtos.GenerateQueryResponse, uint, error) {
	if strings.TrimSpace(userText) == "" {
		return nil, http.StatusBadRequest, ErrEmptyInput
	}

	query, err := s.extractQuery(ctx, userText)
	if err != nil {
		return nil, statusForError(err), err
	}

	sql, err := s.renderSQL(ctx, query)
	if err != nil {
		return nil, statusForError(err), err
	}

	return &dtos.GenerateQueryResponse{
		SQL:    sql,
		Intent: query,
	}, http.StatusOK, nil
}

// extractQuery runs the structured extraction stage. Decoding is strict:
// the response is either a fully valid Query or a typed failure, never a
// partially populated object.
func (s *queryService) extractQuery(ctx context.Context, userText string) (*models.Query, error) {
	systemPrompt := fmt.Sprintf(constants.ExtractionSystemPromptTemplate, s.referenceDate().Format("January 2, 2006"))

	startTime := time.Now()
	raw, err := s.withRetry(ctx, func(callCtx context.Context) (string, error) {
		return s.llmClient.ExtractStructured(callCtx, systemPrompt, userText)
	})
	if err != nil {
		return nil, err
	}
	log.Printf("INFO: Query extraction took %f seconds", time.Since(startTime).Seconds())

	decoder := json.NewDecoder(strings.NewReader(raw))
	decoder.DisallowUnknownFields()
	var query models.Query
	if err := decoder.Decode(&query); err != nil {
		return nil, fmt.Errorf("%w: decoding extraction output: %v", llm.ErrMalformedResponse, err)
	}

	if err := query.Validate(); err != nil {
		return nil, err
	}

	return &query, nil
}

// renderSQL runs the rendering stage and pulls the SQL statement out of the
// completion.
func (s *queryService) renderSQL(ctx context.Context, query *models.Query) (string, error) {
	prompt := BuildSQLGenerationPrompt(query)

	startTime := time.Now()
	completion, err := s.withRetry(ctx, func(callCtx context.Context) (string, error) {
		return s.llmClient.Complete(callCtx, prompt)
	})
	if err != nil {
		return "", err
	}
	log.Printf("INFO: SQL rendering took %f seconds", time.Since(startTime).Seconds())

	sql := utils.ExtractSQL(completion)
	if sql == "" {
		return "", fmt.Errorf("%w: completion contained no SQL", llm.ErrMalformedResponse)
	}
	return sql, nil
}

// BuildSQLGenerationPrompt flattens the query into the deterministic
// instruction template. The same Query always yields a byte-identical
// prompt; the only nondeterminism in the pipeline is the model's own
// completion.
func BuildSQLGenerationPrompt(query *models.Query) string {
	columns := make([]string, 0, len(query.Columns))
	for _, c := range query.Columns {
		columns = append(columns, string(c))
	}

	conditions := make([]string, 0, len(query.Conditions))
	for _, cond := range query.Conditions {
		conditions = append(conditions, fmt.Sprintf("%s %s %s", cond.Column, cond.Operator, cond.Value.SQLLiteral()))
	}
	conditionBlock := "none"
	if len(conditions) > 0 {
		conditionBlock = strings.Join(conditions, "\n")
	}

	return fmt.Sprintf(constants.SQLGenerationPromptTemplate,
		query.TableName,
		strings.Join(columns, ", "),
		conditionBlock,
		query.Aggregate,
		query.OrderBy,
		query.RankType,
	)
}

// withRetry retries only on ErrServiceUnavailable, with exponential backoff
// and a hard per-call timeout. Everything else fails fast.
func (s *queryService) withRetry(ctx context.Context, op func(context.Context) (string, error)) (string, error) {
	backoff := s.retryBackoff
	var lastErr error

	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", fmt.Errorf("%w: %v", llm.ErrServiceUnavailable, ctx.Err())
			case <-time.After(backoff):
			}
			backoff *= 2
			log.Printf("Retrying generation call, attempt %d", attempt+1)
		}

		callCtx, cancel := context.WithTimeout(ctx, s.callTimeout)
		out, err := op(callCtx)
		cancel()
		if err == nil {
			return out, nil
		}
		lastErr = err
		if !errors.Is(err, llm.ErrServiceUnavailable) {
			return "", err
		}
	}

	return "", lastErr
}

func statusForError(err error) uint {
	switch {
	case errors.Is(err, ErrEmptyInput):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrSchemaViolation), errors.Is(err, llm.ErrMalformedResponse):
		return http.StatusUnprocessableEntity
	case errors.Is(err, llm.ErrServiceUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
