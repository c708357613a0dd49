package config

import (
	"os"
	"path"

	"github.com/mitchellh/go-homedir"
	"github.com/relloyd/dwhpipe/constants"
)

// DefaultPath returns dwh.cfg in the working directory if it exists, else the file of the
// same name under ~/.dwhpipe.
func DefaultPath() string {
	if _, err := os.Stat(constants.ConfigFileName); err == nil {
		return constants.ConfigFileName
	}
	home, err := homedir.Dir()
	if err != nil { // if there is no home directory fall back to the working directory...
		return constants.ConfigFileName
	}
	return path.Join(home, constants.ConfigDir, constants.ConfigFileName)
}
