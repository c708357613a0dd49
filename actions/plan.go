package actions

import (
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/relloyd/dwhpipe/catalog"
	"github.com/relloyd/dwhpipe/constants"
	"github.com/relloyd/dwhpipe/helper"
	"github.com/relloyd/dwhpipe/logger"
)

type PlanConfig struct {
	LogLevel         string `errorTxt:"log level" mandatory:"yes"`
	Output           string // "yaml" or "json" for structured output, else a table
	StackDumpOnPanic bool
	Out              io.Writer
}

// RunPlan prints every statement in the order an orchestrator must execute them.
// No configuration is needed since nothing is rendered.
func RunPlan(cfg *PlanConfig) error {
	if err := helper.ValidateStructIsPopulated(cfg); err != nil {
		return err
	}
	log := logger.NewLogger(constants.ServiceName, cfg.LogLevel, cfg.StackDumpOnPanic)
	outline := catalog.Outline()
	log.Debug("plan has ", len(outline), " statements")
	w := getWriter(cfg.Out)
	switch strings.ToLower(cfg.Output) {
	case constants.OutputFormatYAML, constants.OutputFormatJSON:
		return writeStructured(w, outline, cfg.Output)
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Kind", "Rank", "Statement", "Table", "Params"})
	for i, s := range outline {
		name := s.Name
		if s.Cascade {
			name += " (cascade)"
		}
		t.AppendRow(table.Row{i + 1, s.Kind.String(), s.Rank, name, s.Table, strings.Join(s.Params, ", ")})
	}
	t.AppendFooter(table.Row{"", "", "", "parameters", "", strings.Join(catalog.RequiredParams(), ", ")})
	t.Render()
	return nil
}
