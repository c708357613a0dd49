package actions

import (
	"io"

	"github.com/pkg/errors"
	"github.com/relloyd/dwhpipe/catalog"
	"github.com/relloyd/dwhpipe/config"
	"github.com/relloyd/dwhpipe/constants"
	"github.com/relloyd/dwhpipe/helper"
	"github.com/relloyd/dwhpipe/logger"
)

type ShowConfigConfig struct {
	LogLevel         string `errorTxt:"log level" mandatory:"yes"`
	Output           string `errorTxt:"output format" mandatory:"yes"`
	Dialect          string // when set the configuration is also validated for this dialect
	ConfigFile       string
	StackDumpOnPanic bool
	Out              io.Writer
}

// RunShowConfig prints the loaded configuration with secrets redacted.
func RunShowConfig(cfg *ShowConfigConfig) error {
	if err := helper.ValidateStructIsPopulated(cfg); err != nil {
		return err
	}
	log := logger.NewLogger(constants.ServiceName, cfg.LogLevel, cfg.StackDumpOnPanic)
	c, err := config.Load(cfg.ConfigFile)
	if err != nil {
		return errors.Wrap(err, "error loading configuration")
	}
	if cfg.Dialect != "" {
		d, err := catalog.ParseDialect(cfg.Dialect)
		if err != nil {
			return err
		}
		if err = c.Validate(d); err != nil {
			return errors.Wrapf(err, "configuration is not valid for %v", d)
		}
		log.Info("configuration is valid for ", d)
	}
	return writeStructured(getWriter(cfg.Out), c.Redacted(), cfg.Output)
}
