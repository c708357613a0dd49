package helper

import (
	"fmt"
	"os"
	"strings"

	"github.com/relloyd/dwhpipe/constants"
)

// ReadValueFromEnv will read the env var name and populate the supplied val.
// If the env var is not set then return an error and leave val untouched.
func ReadValueFromEnv(name string, val *string) error {
	v := os.Getenv(name)
	if v != "" { // if the environment variable was set...
		*val = v // update the callers value
		return nil
	}
	return fmt.Errorf("value for environment variable %v not found", name)
}

// ReadValueFromEnvWithDefault will read the value of name from the environment into v.
// If it's not set then it will apply the supplied defaultValue and return v.
func ReadValueFromEnvWithDefault(name string, defaultValue string) (v string) {
	_ = ReadValueFromEnv(name, &v)
	if v == "" && defaultValue != "" { // if the environment variable is not set and we have been given a default value...
		v = defaultValue
	}
	return
}

// FlagNameToEnvVar will form a sanitised environment variable name using constants.EnvVarPrefix,
// e.g. "log-level" becomes DWH_LOG_LEVEL.
func FlagNameToEnvVar(name string) string {
	n := strings.TrimSpace(strings.ToUpper(strings.ReplaceAll(name, "-", "_")))
	return constants.EnvVarPrefix + "_" + n
}
