package constants

// OpenAI JSON schema for structured query extraction. Every enumeration is
// closed: the model cannot emit a table, column, operator, aggregate, rank
// type or sort direction outside the sets below. The "none" variants of
// aggregate and rank_type are how the model says a query carries neither.
const OpenAIQueryExtractionSchema = `{
    "type": "object",
    "required": [
      "table_name",
      "columns",
      "conditions",
      "aggregate",
      "rank_type",
      "order_by"
    ],
    "properties": {
      "table_name": {
        "type": "string",
        "enum": ["ASSISTANT_METRICS"],
        "description": "Table holding assistant interaction metrics."
      },
      "columns": {
        "type": "array",
        "items": {
          "type": "string",
          "enum": ["USER_ID", "ASSISTANT_NAME", "ASSISTANT_ID", "QUESTION", "ANSWER", "FEEDBACK", "DATE"]
        },
        "description": "Columns to select, in the order they should appear."
      },
      "conditions": {
        "type": "array",
        "items": {
          "type": "object",
          "required": ["column", "operator", "value"],
          "properties": {
            "column": {
              "type": "string",
              "enum": ["USER_ID", "ASSISTANT_NAME", "ASSISTANT_ID", "QUESTION", "ANSWER", "FEEDBACK", "DATE"]
            },
            "operator": {
              "type": "string",
              "enum": ["=", ">", "<", "<=", ">=", "!="]
            },
            "value": {
              "anyOf": [
                {"type": "string"},
                {"type": "integer"},
                {
                  "type": "object",
                  "required": ["column_name"],
                  "properties": {
                    "column_name": {
                      "type": "string",
                      "description": "Another column whose value this condition compares against."
                    }
                  },
                  "additionalProperties": false
                }
              ]
            }
          },
          "additionalProperties": false
        },
        "description": "Filter clauses combined with AND."
      },
      "aggregate": {
        "type": "string",
        "enum": ["none", "count", "sum", "avg", "min", "max"],
        "description": "Aggregate function to apply, or none."
      },
      "rank_type": {
        "type": "string",
        "enum": ["none", "rank", "dense_rank"],
        "description": "Window ranking function to apply, or none."
      },
      "order_by": {
        "type": "string",
        "enum": ["asc", "desc"]
      }
    },
    "additionalProperties": false
  }`
