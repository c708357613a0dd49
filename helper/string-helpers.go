package helper

import (
	"strings"
)

// CsvToStringSliceTrimSpaces splits s on commas and trims spaces from each token.
// Empty tokens are dropped so "create, ,insert" gives {create, insert}.
func CsvToStringSliceTrimSpaces(s string) []string {
	tokens := strings.Split(s, ",")
	retval := make([]string, 0, len(tokens))
	for x := range tokens {
		t := strings.TrimSpace(tokens[x])
		if t != "" {
			retval = append(retval, t)
		}
	}
	return retval
}

// TrimSql removes surrounding white space and any trailing statement terminator from s.
func TrimSql(s string, terminator string) string {
	s = strings.TrimSpace(s)
	for strings.HasSuffix(s, terminator) {
		s = strings.TrimSpace(strings.TrimSuffix(s, terminator))
	}
	return s
}

// GetTrueFalseStringAsBool returns true if s is one of the usual spellings of true.
func GetTrueFalseStringAsBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "t", "yes", "y", "1":
		return true
	}
	return false
}

// Redact keeps the first keep characters of s and replaces the rest with the redacted marker.
func Redact(s string, keep int, marker string) string {
	if s == "" {
		return ""
	}
	if keep <= 0 || keep >= len(s) {
		return marker
	}
	return s[:keep] + marker
}
