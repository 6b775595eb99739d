package app

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	preparedBinaryParam  = "disable_prepared_binary_result"
	maxTracedQueryLength = 512
	redactedQueryLiteral = "'?'"
	tracedQueryEllipsis  = "..."
)

var (
	queryWhitespace    = regexp.MustCompile(`\s+`)
	queryStringLiteral = regexp.MustCompile(`'(?:[^']|'')*'`)
)

// NormalizeDBURL turns on lib/pq's disable_prepared_binary_result unless the
// connection string already sets it. Both URL and key=value forms are accepted.
func NormalizeDBURL(raw string, disablePreparedBinaryResult bool) string {
	if !disablePreparedBinaryResult {
		return raw
	}

	trimmed := strings.TrimSpace(raw)
	if !isURLForm(trimmed) {
		if _, ok := dsnValue(trimmed, preparedBinaryParam); ok || trimmed == "" {
			return raw
		}
		return trimmed + " " + preparedBinaryParam + "=yes"
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return raw
	}
	query := parsed.Query()
	if query.Get(preparedBinaryParam) != "" {
		return raw
	}
	query.Set(preparedBinaryParam, "yes")
	parsed.RawQuery = query.Encode()
	return parsed.String()
}

// dbNameFromURL is used as the db.name span attribute. It returns "" when the
// connection string names no database.
func dbNameFromURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if isURLForm(trimmed) {
		parsed, err := url.Parse(trimmed)
		if err != nil {
			return ""
		}
		return strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/"))
	}

	name, _ := dsnValue(trimmed, "dbname")
	return name
}

func isURLForm(raw string) bool {
	return strings.HasPrefix(raw, "postgres://") || strings.HasPrefix(raw, "postgresql://")
}

func dsnValue(dsn, key string) (string, bool) {
	for _, token := range strings.Fields(dsn) {
		k, v, ok := strings.Cut(token, "=")
		if !ok || k != key {
			continue
		}
		return strings.Trim(v, `"'`), true
	}
	return "", false
}

// formatDBQueryForTrace collapses whitespace, redacts string literals (player
// and team names) and caps the statement on a rune boundary.
func formatDBQueryForTrace(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return query
	}

	normalized := queryWhitespace.ReplaceAllString(query, " ")
	normalized = queryStringLiteral.ReplaceAllString(normalized, redactedQueryLiteral)
	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}

	cut := maxTracedQueryLength
	for cut > 0 && !utf8.RuneStart(normalized[cut]) {
		cut--
	}
	return normalized[:cut] + tracedQueryEllipsis
}
