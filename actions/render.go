package actions

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/relloyd/dwhpipe/catalog"
	"github.com/relloyd/dwhpipe/constants"
	"github.com/relloyd/dwhpipe/helper"
	"github.com/relloyd/dwhpipe/logger"
)

type RenderConfig struct {
	LogLevel         string   `errorTxt:"log level" mandatory:"yes"`
	Dialect          string   `errorTxt:"dialect" mandatory:"yes"`
	Output           string   `errorTxt:"output format" mandatory:"yes"`
	ConfigFile       string   // empty for the default location
	Stages           []string // kinds to render; empty for all
	StackDumpOnPanic bool
	Out              io.Writer
}

// renderedStatements is the YAML/JSON document written by RunRender.
type renderedStatements struct {
	Dialect catalog.Dialect     `json:"dialect"`
	Drop    []catalog.Statement `json:"drop,omitempty"`
	Create  []catalog.Statement `json:"create,omitempty"`
	Copy    []catalog.Statement `json:"copy,omitempty"`
	Insert  []catalog.Statement `json:"insert,omitempty"`
}

// RunRender builds the catalog from configuration and prints the statements of the requested kinds
// in execution order, as a SQL script or as YAML/JSON for an orchestrator.
func RunRender(cfg *RenderConfig) error {
	if err := helper.ValidateStructIsPopulated(cfg); err != nil {
		return err
	}
	log := logger.NewLogger(constants.ServiceName, cfg.LogLevel, cfg.StackDumpOnPanic)
	d, err := catalog.ParseDialect(cfg.Dialect)
	if err != nil {
		return err
	}
	kinds, err := parseStages(cfg.Stages)
	if err != nil {
		return err
	}
	cat, err := loadCatalog(log, cfg.ConfigFile, d)
	if err != nil {
		return err
	}
	w := getWriter(cfg.Out)
	if strings.EqualFold(cfg.Output, constants.OutputFormatSQL) {
		return errors.Wrap(writeSQL(w, cat, kinds, time.Now()), "error writing SQL")
	}
	doc := renderedStatements{Dialect: cat.Dialect()}
	for _, k := range kinds {
		s := cat.Statements(k)
		switch k {
		case catalog.Drop:
			doc.Drop = s
		case catalog.Create:
			doc.Create = s
		case catalog.Copy:
			doc.Copy = s
		case catalog.Insert:
			doc.Insert = s
		}
	}
	log.Info("rendering ", len(kinds), " statement list(s) as ", cfg.Output)
	return writeStructured(w, doc, cfg.Output)
}

// writeSQL writes a script with one terminated statement per block, each preceded by a comment naming it.
func writeSQL(w io.Writer, cat *catalog.Catalog, kinds []catalog.Kind, now time.Time) error {
	if _, err := fmt.Fprintf(w, "-- %v %v statements generated %v\n", constants.ServiceName, cat.Dialect(), now.UTC().Format(constants.TimeFormatYearSeconds)); err != nil {
		return err
	}
	for _, k := range kinds {
		for _, s := range cat.Statements(k) {
			if _, err := fmt.Fprintf(w, "\n-- %v\n%v%v\n", s.Name, s.SQL, constants.StatementTerminator); err != nil {
				return err
			}
		}
	}
	return nil
}
