package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validQuery() Query {
	bot := "Bot1"
	return Query{
		TableName: TableAssistantMetrics,
		Columns:   []Column{ColumnQuestion, ColumnAnswer},
		Conditions: []Condition{
			{Column: ColumnAssistantName, Operator: OperatorEq, Value: ConditionValue{Str: &bot}},
		},
		Aggregate: AggregateNone,
		RankType:  RankNone,
		OrderBy:   OrderAsc,
	}
}

func TestConditionValueUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, v ConditionValue)
	}{
		{
			name:  "string literal",
			input: `"Bot1"`,
			check: func(t *testing.T, v ConditionValue) {
				require.NotNil(t, v.Str)
				assert.Equal(t, "Bot1", *v.Str)
				assert.Nil(t, v.Int)
				assert.Nil(t, v.Dynamic)
			},
		},
		{
			name:  "integer literal",
			input: `42`,
			check: func(t *testing.T, v ConditionValue) {
				require.NotNil(t, v.Int)
				assert.Equal(t, int64(42), *v.Int)
			},
		},
		{
			name:  "dynamic column reference",
			input: `{"column_name":"DATE"}`,
			check: func(t *testing.T, v ConditionValue) {
				require.NotNil(t, v.Dynamic)
				assert.Equal(t, "DATE", v.Dynamic.ColumnName)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v ConditionValue
			require.NoError(t, json.Unmarshal([]byte(tt.input), &v))
			tt.check(t, v)
		})
	}
}

func TestConditionValueUnmarshalRejectsNull(t *testing.T) {
	var v ConditionValue
	assert.Error(t, json.Unmarshal([]byte(`null`), &v))
}

func TestConditionValueUnmarshalRejectsFloat(t *testing.T) {
	var v ConditionValue
	assert.Error(t, json.Unmarshal([]byte(`1.5`), &v))
}

func TestConditionValueMarshalRoundTrip(t *testing.T) {
	var v ConditionValue
	require.NoError(t, json.Unmarshal([]byte(`{"column_name":"FEEDBACK"}`), &v))

	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"column_name":"FEEDBACK"}`, string(out))
}

func TestConditionValueSQLLiteral(t *testing.T) {
	name := "O'Brien"
	n := int64(7)
	tests := []struct {
		name string
		v    ConditionValue
		want string
	}{
		{"string is quoted and escaped", ConditionValue{Str: &name}, "'O''Brien'"},
		{"integer is bare", ConditionValue{Int: &n}, "7"},
		{"dynamic is the column name", ConditionValue{Dynamic: &DynamicValue{ColumnName: "DATE"}}, "DATE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.SQLLiteral())
		})
	}
}

func TestQueryValidate(t *testing.T) {
	t.Run("valid query passes", func(t *testing.T) {
		q := validQuery()
		assert.NoError(t, q.Validate())
	})

	t.Run("unknown table", func(t *testing.T) {
		q := validQuery()
		q.TableName = "USERS"
		assert.ErrorIs(t, q.Validate(), ErrSchemaViolation)
	})

	t.Run("no columns", func(t *testing.T) {
		q := validQuery()
		q.Columns = nil
		assert.ErrorIs(t, q.Validate(), ErrSchemaViolation)
	})

	t.Run("unknown selected column", func(t *testing.T) {
		q := validQuery()
		q.Columns = append(q.Columns, "SLACK_ID")
		assert.ErrorIs(t, q.Validate(), ErrSchemaViolation)
	})

	t.Run("unknown condition column", func(t *testing.T) {
		q := validQuery()
		q.Conditions[0].Column = "SLACK_ID"
		assert.ErrorIs(t, q.Validate(), ErrSchemaViolation)
	})

	t.Run("unknown operator", func(t *testing.T) {
		q := validQuery()
		q.Conditions[0].Operator = "LIKE"
		assert.ErrorIs(t, q.Validate(), ErrSchemaViolation)
	})

	t.Run("empty condition value", func(t *testing.T) {
		q := validQuery()
		q.Conditions[0].Value = ConditionValue{}
		assert.ErrorIs(t, q.Validate(), ErrSchemaViolation)
	})

	t.Run("dynamic value referencing unknown column", func(t *testing.T) {
		q := validQuery()
		q.Conditions[0].Value = ConditionValue{Dynamic: &DynamicValue{ColumnName: "TOTAL_COST"}}
		assert.ErrorIs(t, q.Validate(), ErrSchemaViolation)
	})

	t.Run("unknown aggregate", func(t *testing.T) {
		q := validQuery()
		q.Aggregate = "median"
		assert.ErrorIs(t, q.Validate(), ErrSchemaViolation)
	})

	t.Run("unknown rank type", func(t *testing.T) {
		q := validQuery()
		q.RankType = "row_number"
		assert.ErrorIs(t, q.Validate(), ErrSchemaViolation)
	})

	t.Run("unknown order direction", func(t *testing.T) {
		q := validQuery()
		q.OrderBy = "sideways"
		assert.ErrorIs(t, q.Validate(), ErrSchemaViolation)
	})
}
