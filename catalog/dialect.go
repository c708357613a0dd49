package catalog

import (
	"fmt"
	"strings"

	"github.com/relloyd/dwhpipe/constants"
)

// Dialect names the warehouse flavour that statements are rendered for.
type Dialect string

const (
	Redshift  Dialect = constants.DialectRedshift
	Snowflake Dialect = constants.DialectSnowflake
	DuckDB    Dialect = constants.DialectDuckDB
)

// Dialects lists the supported dialects, default first.
var Dialects = []Dialect{Redshift, Snowflake, DuckDB}

// UnknownDialectError is returned for a dialect with no templates.
type UnknownDialectError struct {
	Name string
}

func (e UnknownDialectError) Error() string {
	names := make([]string, 0, len(Dialects))
	for _, d := range Dialects {
		names = append(names, string(d))
	}
	return fmt.Sprintf("unknown dialect %q: use one of %v", e.Name, strings.Join(names, ", "))
}

// escapesBackslash reports whether a backslash inside a string literal starts an escape sequence.
func (d Dialect) escapesBackslash() bool {
	return d != DuckDB
}

// ParseDialect converts a case-insensitive name into a Dialect.
// An empty name gives the default dialect.
func ParseDialect(s string) (Dialect, error) {
	n := strings.ToLower(strings.TrimSpace(s))
	if n == "" {
		return Dialect(constants.DialectDefault), nil
	}
	for _, d := range Dialects {
		if string(d) == n {
			return d, nil
		}
	}
	return "", UnknownDialectError{Name: s}
}
