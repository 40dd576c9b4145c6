package constants

const (
	// ExtractionSystemPromptTemplate anchors the model to a reference date
	// so relative expressions like "July 2024" resolve deterministically.
	// The date is injected per request.
	ExtractionSystemPromptTemplate = `You are a helpful assistant. The current date is %s. You help users query for the data they are looking for by calling the query function.`

	// SQLGenerationPromptTemplate turns a flattened Query into the single
	// instruction sent to the completion model. Slots, in order: table
	// name, column list, condition list, aggregate function, order-by
	// direction, rank type.
	SQLGenerationPromptTemplate = `You are tasked with generating a Snowflake SQL query based on the provided information. Follow these steps to create the query:

1. The table name you will be querying is:
<table_name>
%s
</table_name>

2. You will be selecting the following columns:
<columns>
%s
</columns>

3. The query should include the following conditions:
<conditions>
%s
</conditions>

4. The query should use the following aggregate function (if applicable):
<aggregate_function>
%s
</aggregate_function>

5. The query should be ordered by the following direction:
<order_by>
%s
</order_by>

6. The query should use the following rank type (if applicable):
<rank_type>
%s
</rank_type>

7. Format your SQL query as follows:
- Start with the SELECT statement, listing all the columns in the order given.
- Follow with the FROM clause, specifying the table name.
- If there are conditions, include a WHERE clause with the conditions combined using AND.
- If the aggregate function is not "none", wrap the relevant column in it in the SELECT statement and add a GROUP BY clause for every selected column that is not aggregated.
- If the rank type is not "none", include a window ranking expression in the SELECT statement ordered by the aggregated or measured column descending, with an alias.
- Use proper SQL syntax, including a semicolon at the end of the query.

8. Here's an example of how your output should be formatted:

<example without aggregate function>
SELECT column1, column2, column3
FROM table_name
WHERE column1 = 'value1'
AND column2 > 10;
</example without aggregate function>

<example with aggregate function>
SELECT column1, SUM(column2)
FROM table_name
WHERE column2 = 'value2'
GROUP BY column1;
</example with aggregate function>

<example with rank type>
SELECT
    USER_ID,
    COUNT(*) AS QUESTION_COUNT,
    DENSE_RANK() OVER (ORDER BY COUNT(*) DESC) AS RANK
FROM
    ASSISTANT_METRICS
WHERE
    DATE >= '2024-07-01' AND DATE <= '2024-07-31'
GROUP BY
    USER_ID
ORDER BY
    QUESTION_COUNT DESC;
</example with rank type>

9. Now, generate the Snowflake SQL query based on the provided information. Write your query inside <query> tags.

Remember to use the exact table name, columns, and conditions provided. Do not add any columns, conditions, or tables that were not specified in the input.`
)
