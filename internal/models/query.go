package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrSchemaViolation marks structured extraction output that decoded fine
// but falls outside the closed domain model.
var ErrSchemaViolation = errors.New("query violates the domain schema")

// Table identifies a queryable dataset. The domain currently exposes a
// single table of assistant interaction metrics.
type Table string

const TableAssistantMetrics Table = "ASSISTANT_METRICS"

// Column is one of the queryable fields of ASSISTANT_METRICS. Extraction
// must never select outside this set.
type Column string

const (
	ColumnUserID        Column = "USER_ID"
	ColumnAssistantName Column = "ASSISTANT_NAME"
	ColumnAssistantID   Column = "ASSISTANT_ID"
	ColumnQuestion      Column = "QUESTION"
	ColumnAnswer        Column = "ANSWER"
	ColumnFeedback      Column = "FEEDBACK"
	ColumnDate          Column = "DATE"
)

// Columns lists every queryable column, in schema order.
var Columns = []Column{
	ColumnUserID,
	ColumnAssistantName,
	ColumnAssistantID,
	ColumnQuestion,
	ColumnAnswer,
	ColumnFeedback,
	ColumnDate,
}

// Operator is a SQL comparison symbol used in WHERE conditions.
type Operator string

const (
	OperatorEq Operator = "="
	OperatorGt Operator = ">"
	OperatorLt Operator = "<"
	OperatorLe Operator = "<="
	OperatorGe Operator = ">="
	OperatorNe Operator = "!="
)

// Aggregate is a SQL aggregate function. AggregateNone means the query
// carries no aggregation.
type Aggregate string

const (
	AggregateNone  Aggregate = "none"
	AggregateCount Aggregate = "count"
	AggregateSum   Aggregate = "sum"
	AggregateAvg   Aggregate = "avg"
	AggregateMin   Aggregate = "min"
	AggregateMax   Aggregate = "max"
)

// RankType is a SQL window ranking function. RankNone means no ranking.
type RankType string

const (
	RankNone      RankType = "none"
	RankRank      RankType = "rank"
	RankDenseRank RankType = "dense_rank"
)

// OrderBy is a sort direction.
type OrderBy string

const (
	OrderAsc  OrderBy = "asc"
	OrderDesc OrderBy = "desc"
)

// DynamicValue references another column's value, used when a condition
// compares two columns instead of a column against a literal.
type DynamicValue struct {
	ColumnName string `json:"column_name"`
}

// ConditionValue is the right-hand side of a condition: a string literal,
// an integer literal, or a DynamicValue column reference. Exactly one of
// the fields is set.
type ConditionValue struct {
	Str     *string
	Int     *int64
	Dynamic *DynamicValue
}

func (v *ConditionValue) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		return fmt.Errorf("condition value must not be null")
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v.Str = &s
		return nil
	case '{':
		var d DynamicValue
		if err := json.Unmarshal(data, &d); err != nil {
			return err
		}
		v.Dynamic = &d
		return nil
	default:
		var n int64
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("condition value must be a string, integer or column reference: %v", err)
		}
		v.Int = &n
		return nil
	}
}

func (v ConditionValue) MarshalJSON() ([]byte, error) {
	switch {
	case v.Str != nil:
		return json.Marshal(*v.Str)
	case v.Int != nil:
		return json.Marshal(*v.Int)
	case v.Dynamic != nil:
		return json.Marshal(*v.Dynamic)
	default:
		return nil, fmt.Errorf("condition value is empty")
	}
}

// SQLLiteral renders the value the way it should appear in a SQL
// condition: quoted for strings, bare for integers and column references.
func (v ConditionValue) SQLLiteral() string {
	switch {
	case v.Str != nil:
		return "'" + strings.ReplaceAll(*v.Str, "'", "''") + "'"
	case v.Int != nil:
		return strconv.FormatInt(*v.Int, 10)
	case v.Dynamic != nil:
		return v.Dynamic.ColumnName
	default:
		return ""
	}
}

// Condition is a single AND-combined filter clause.
type Condition struct {
	Column   Column         `json:"column"`
	Operator Operator       `json:"operator"`
	Value    ConditionValue `json:"value"`
}

// Query is the complete structured intent produced by the extraction
// stage. It is created once per request, consumed once by the renderer and
// never mutated.
type Query struct {
	TableName  Table       `json:"table_name"`
	Columns    []Column    `json:"columns"`
	Conditions []Condition `json:"conditions"`
	Aggregate  Aggregate   `json:"aggregate"`
	RankType   RankType    `json:"rank_type"`
	OrderBy    OrderBy     `json:"order_by"`
}

func validColumn(c Column) bool {
	switch c {
	case ColumnUserID, ColumnAssistantName, ColumnAssistantID,
		ColumnQuestion, ColumnAnswer, ColumnFeedback, ColumnDate:
		return true
	}
	return false
}

func validOperator(o Operator) bool {
	switch o {
	case OperatorEq, OperatorGt, OperatorLt, OperatorLe, OperatorGe, OperatorNe:
		return true
	}
	return false
}

// Validate enforces the closed enumerations. Any violation is reported as
// ErrSchemaViolation so callers can distinguish it from transport and
// decoding failures.
func (q *Query) Validate() error {
	if q.TableName != TableAssistantMetrics {
		return fmt.Errorf("%w: unknown table %q", ErrSchemaViolation, q.TableName)
	}
	if len(q.Columns) == 0 {
		return fmt.Errorf("%w: no columns selected", ErrSchemaViolation)
	}
	for _, c := range q.Columns {
		if !validColumn(c) {
			return fmt.Errorf("%w: unknown column %q", ErrSchemaViolation, c)
		}
	}
	for i, cond := range q.Conditions {
		if !validColumn(cond.Column) {
			return fmt.Errorf("%w: condition %d references unknown column %q", ErrSchemaViolation, i, cond.Column)
		}
		if !validOperator(cond.Operator) {
			return fmt.Errorf("%w: condition %d uses unknown operator %q", ErrSchemaViolation, i, cond.Operator)
		}
		if cond.Value.Str == nil && cond.Value.Int == nil && cond.Value.Dynamic == nil {
			return fmt.Errorf("%w: condition %d has no value", ErrSchemaViolation, i)
		}
		if cond.Value.Dynamic != nil && !validColumn(Column(cond.Value.Dynamic.ColumnName)) {
			return fmt.Errorf("%w: condition %d references unknown column %q", ErrSchemaViolation, i, cond.Value.Dynamic.ColumnName)
		}
	}
	switch q.Aggregate {
	case AggregateNone, AggregateCount, AggregateSum, AggregateAvg, AggregateMin, AggregateMax:
	default:
		return fmt.Errorf("%w: unknown aggregate %q", ErrSchemaViolation, q.Aggregate)
	}
	switch q.RankType {
	case RankNone, RankRank, RankDenseRank:
	default:
		return fmt.Errorf("%w: unknown rank type %q", ErrSchemaViolation, q.RankType)
	}
	switch q.OrderBy {
	case OrderAsc, OrderDesc:
	default:
		return fmt.Errorf("%w: unknown order direction %q", ErrSchemaViolation, q.OrderBy)
	}
	return nil
}
