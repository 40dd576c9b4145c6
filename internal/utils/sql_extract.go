package utils

import (
	"regexp"
	"strings"
)

var (
	queryTagPattern = regexp.MustCompile(`(?s)<query>(.*?)</query>`)
	sqlFencePattern = regexp.MustCompile("(?s)```sql\\s*(.*?)```")
)

// ExtractSQL pulls the SQL statement out of an LLM completion. The
// rendering prompt asks for the query inside <query> tags, but models
// sometimes answer with a fenced code block or surrounding prose instead,
// so fall back progressively: tags, then a sql fence, then the cleaned-up
// raw text.
func ExtractSQL(response string) string {
	if m := queryTagPattern.FindStringSubmatch(response); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := sqlFencePattern.FindStringSubmatch(response); m != nil {
		return strings.TrimSpace(m[1])
	}

	cleaned := strings.ReplaceAll(response, "```sql", "")
	cleaned = strings.ReplaceAll(cleaned, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	return strings.TrimSpace(cleaned)
}
