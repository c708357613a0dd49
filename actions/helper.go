package actions

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/pkg/errors"
	"github.com/relloyd/dwhpipe/catalog"
	"github.com/relloyd/dwhpipe/config"
	"github.com/relloyd/dwhpipe/constants"
	"github.com/relloyd/dwhpipe/helper"
	"github.com/relloyd/dwhpipe/logger"
)

// getWriter returns w or os.Stdout if w is nil.
func getWriter(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}

// loadCatalog reads the config file, checks it for dialect d and builds the catalog from it.
func loadCatalog(log logger.Logger, configFile string, d catalog.Dialect) (*catalog.Catalog, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, errors.Wrap(err, "error loading configuration")
	}
	log.Debug("loaded configuration: ", cfg)
	if err = cfg.Validate(d); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	cat, err := catalog.New(log, d, cfg.CatalogParams())
	if err != nil {
		return nil, errors.Wrapf(err, "error building %v statements", d)
	}
	return cat, nil
}

// parseStages converts a CSV of statement kinds into Kinds in execution order.
// An empty list or "all" gives every kind.
func parseStages(stages []string) ([]catalog.Kind, error) {
	want := make(map[catalog.Kind]bool)
	for _, s := range stages {
		for _, v := range helper.CsvToStringSliceTrimSpaces(s) {
			if strings.EqualFold(v, constants.StageAll) {
				return catalog.Kinds, nil
			}
			k, err := catalog.ParseKind(v)
			if err != nil {
				return nil, err
			}
			want[k] = true
		}
	}
	if len(want) == 0 {
		return catalog.Kinds, nil
	}
	retval := make([]catalog.Kind, 0, len(want))
	for _, k := range catalog.Kinds {
		if want[k] {
			retval = append(retval, k)
		}
	}
	return retval, nil
}

// writeStructured marshals v as YAML or JSON into w.
func writeStructured(w io.Writer, v interface{}, format string) error {
	var data []byte
	var err error
	switch strings.ToLower(format) {
	case constants.OutputFormatYAML:
		data, err = yaml.Marshal(v)
	case constants.OutputFormatJSON:
		data, err = json.MarshalIndent(v, "", "  ")
		data = append(data, '\n')
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
	if err != nil {
		return errors.Wrap(err, "error marshalling output")
	}
	_, err = w.Write(data)
	return err
}
