// Package catalog holds the SQL statements that build the song-play star schema.
//
// A Catalog is built once from explicit parameters and exposes four ordered
// statement lists that an orchestrator runs in sequence: drop, create, copy, insert.
// Nothing in the package talks to a database.
package catalog

import (
	"fmt"
	"strings"

	"github.com/relloyd/dwhpipe/constants"
	"github.com/relloyd/dwhpipe/helper"
	"github.com/relloyd/dwhpipe/logger"
)

// Params are the named values substituted into statement templates.
type Params map[string]string

// Statement is one rendered SQL statement and the descriptor it came from.
type Statement struct {
	Name     string   `json:"name"`
	Table    string   `json:"table"`
	Kind     Kind     `json:"kind"`
	Rank     int      `json:"rank"`
	Cascade  bool     `json:"cascade,omitempty"`
	Params   []string `json:"params,omitempty"`
	Template string   `json:"-"`
	SQL      string   `json:"sql"`
}

// Catalog is an immutable set of rendered statements for one dialect.
// It is safe for concurrent use.
type Catalog struct {
	dialect    Dialect
	statements map[Kind][]Statement
	byName     map[string]Statement
}

// New renders every statement for dialect d using params p. An empty dialect means Redshift.
// It fails fast if a statement needs a parameter that is missing, if a value cannot be quoted into SQL,
// or if the statement order would break a foreign key dependency.
// Values must not contain a single quote. Backslashes are also rejected for dialects that treat
// them as escapes in string literals, so local Windows paths only work with DuckDB.
// A nil log discards everything below error level.
func New(log logger.Logger, d Dialect, p Params) (*Catalog, error) {
	d, err := ParseDialect(string(d))
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.NewLogger(constants.ServiceName, "error", false)
	}
	for k, v := range p {
		if err := checkLiteral(d, k, v); err != nil {
			return nil, err
		}
	}
	cat := &Catalog{
		dialect:    d,
		statements: make(map[Kind][]Statement),
		byName:     make(map[string]Statement),
	}
	for _, desc := range registry {
		s, err := render(d, desc, p, len(cat.statements[desc.kind])+1)
		if err != nil {
			return nil, err
		}
		log.Debug("rendered ", d, " statement ", s.Name, " (", s.Kind, " rank ", s.Rank, ")")
		cat.statements[desc.kind] = append(cat.statements[desc.kind], s)
		cat.byName[s.Name] = s
	}
	if err := validateOrder(cat.statements); err != nil {
		return nil, err
	}
	log.Info("built ", d, " catalog with ", len(cat.byName), " statements")
	return cat, nil
}

func checkLiteral(d Dialect, k, v string) error {
	if strings.Contains(v, "'") {
		return InvalidParamError{Param: k, Reason: "value must not contain quotes"}
	}
	if d.escapesBackslash() && strings.Contains(v, "\\") {
		return InvalidParamError{Param: k, Reason: fmt.Sprintf("value must not contain backslashes for dialect %v", d)}
	}
	return nil
}

func render(d Dialect, desc descriptor, p Params, rank int) (Statement, error) {
	data := make(map[string]string, len(desc.params))
	for _, name := range desc.params { // only expose the declared params to the template...
		v, ok := p[name]
		if !ok || strings.TrimSpace(v) == "" {
			return Statement{}, MissingParamError{Statement: desc.name, Param: name}
		}
		data[name] = strings.TrimSpace(v)
	}
	text, t, err := loadTemplate(d, desc.name)
	if err != nil {
		return Statement{}, err
	}
	var b strings.Builder
	if err = t.Execute(&b, data); err != nil {
		return Statement{}, fmt.Errorf("error rendering %v statement %q: %w", d, desc.name, err)
	}
	return Statement{
		Name:     desc.name,
		Table:    desc.table,
		Kind:     desc.kind,
		Rank:     rank,
		Cascade:  desc.cascade,
		Params:   append([]string(nil), desc.params...),
		Template: text,
		SQL:      helper.TrimSql(b.String(), constants.StatementTerminator),
	}, nil
}

// Dialect returns the dialect the statements were rendered for.
func (c *Catalog) Dialect() Dialect {
	return c.dialect
}

// Statements returns the statements of kind k in execution order.
func (c *Catalog) Statements(k Kind) []Statement {
	return append([]Statement(nil), c.statements[k]...)
}

// Lookup finds a statement by name, e.g. "songplay_table_insert".
func (c *Catalog) Lookup(name string) (Statement, bool) {
	s, ok := c.byName[name]
	return s, ok
}

// Plan returns every statement in the order an orchestrator must execute them.
func (c *Catalog) Plan() []Statement {
	retval := make([]Statement, 0, len(c.byName))
	for _, k := range Kinds {
		retval = append(retval, c.statements[k]...)
	}
	return retval
}

// Queries returns the SQL text of kind k in execution order.
func (c *Catalog) Queries(k Kind) []string {
	retval := make([]string, 0, len(c.statements[k]))
	for _, s := range c.statements[k] {
		retval = append(retval, s.SQL)
	}
	return retval
}

// DropTableQueries drops all seven tables. Parents of foreign keys are dropped with cascade.
func (c *Catalog) DropTableQueries() []string {
	return c.Queries(Drop)
}

// CreateTableQueries creates staging tables, then dimensions, then the fact table.
func (c *Catalog) CreateTableQueries() []string {
	return c.Queries(Create)
}

// CopyTableQueries bulk loads the two staging tables.
func (c *Catalog) CopyTableQueries() []string {
	return c.Queries(Copy)
}

// InsertTableQueries fills the dimensions and then the fact table from staging.
func (c *Catalog) InsertTableQueries() []string {
	return c.Queries(Insert)
}
