package cmd

import (
	"fmt"
	"os"

	"github.com/relloyd/dwhpipe/actions"
	c "github.com/relloyd/dwhpipe/constants"
	"github.com/relloyd/dwhpipe/helper"
	"github.com/relloyd/dwhpipe/logger"
)

// init will be called first due to the lexical order in which these functions are executed.
// This ensures the value of twelveFactorMode is set such that other init() functions that configure
// Cobra can do the job of processing all environment variables that would contain equivalent of the CLI flag
// structures used by the actions.
func init() {
	setupTwelveFactorMode()
}

// setupTwelveFactorMode will enable or disable 12 factor mode based on environment variable.
func setupTwelveFactorMode() {
	// Explicitly turn off this mode when unset since tests may have turned it on while others require it off.
	twelveFactorMode = os.Getenv(envVarTwelveFactorMode) != ""
}

const (
	envVarTwelveFactorMode = c.EnvVarPrefix + "_" + "12FACTOR_MODE"
	envVarCommand          = c.EnvVarPrefix + "_" + "COMMAND"
	envVarSubcommand       = c.EnvVarPrefix + "_" + "SUBCOMMAND"
	envVarStages           = c.EnvVarPrefix + "_" + "STAGES" // CSV of drop|create|copy|insert
	envVarLogLevel         = c.EnvVarPrefix + "_" + "LOG_LEVEL"
	envVarStackDump        = c.EnvVarPrefix + "_" + "STACK_DUMP"
)

var (
	twelveFactorMode bool // true if os env var envVarTwelveFactorMode is set
	twelveFactorVars = map[string]string{
		envVarCommand:      "",
		envVarSubcommand:   "",
		envVarStages:       "",
		envVarLogLevel:     "",
		envVarStackDump:    "",
		c.EnvVarIAMRoleARN: "",
		c.EnvVarS3LogData:  "",
		c.EnvVarS3SongData: "",
	}
	twelveFactorVarsSensitive = map[string]string{ // used to flag some of the above variables as being sensitive.
		c.EnvVarIAMRoleARN: "",
	}
)

type twelveFactorAction struct {
	setupFunc func() // copies values from twelveFactorVars into the action config
	cfg       interface{}
}

var twelveFactorActions = map[string]twelveFactorAction{
	c.ActionFuncsCommandRender: {
		setupFunc: func() {
			renderCfg.Stages = helper.CsvToStringSliceTrimSpaces(twelveFactorVars[envVarStages])
			renderCfg.Out = os.Stdout
		},
		cfg: &renderCfg,
	},
	c.ActionFuncsCommandPlan: {
		setupFunc: func() { planCfg.Out = os.Stdout },
		cfg:       &planCfg,
	},
	c.ActionFuncsCommandConfig + "-" + c.ActionFuncsSubCommandShow: {
		setupFunc: func() { configShowCfg.Out = os.Stdout },
		cfg:       &configShowCfg,
	},
}

func twelveFactorActionKey(command string, subcommand string) string {
	if subcommand == "" {
		return command
	}
	return fmt.Sprintf("%v-%v", command, subcommand)
}

func execute12FactorMode(acts map[string]twelveFactorAction) (err error) {
	logLevel := helper.ReadValueFromEnvWithDefault(envVarLogLevel, "warn") // fetch logLevel from env as this is not a persistent flag.
	stackDump := helper.GetTrueFalseStringAsBool(os.Getenv(envVarStackDump))
	log := logger.NewJSONLogger(c.ServiceName, logLevel, stackDump)
	log.Info("dwhp is running in 12 Factor mode...")
	// Save values for the required variables.
	for k := range twelveFactorVars { // for each env variable that we need...
		// Save it and log it.
		twelveFactorVars[k] = os.Getenv(k)
		if _, sensitive := twelveFactorVarsSensitive[k]; !sensitive { // if the env variable does not contain sensitive values...
			log.Debug(k, "=", twelveFactorVars[k])
		} else { // else output obfuscated value...
			log.Debug(k, "=", helper.Redact(twelveFactorVars[k], 12, c.RedactedText))
		}
	}
	// Use command and subcommand to fetch the appropriate action.
	command, subcommand := twelveFactorVars[envVarCommand], twelveFactorVars[envVarSubcommand]
	a, ok := acts[twelveFactorActionKey(command, subcommand)]
	if !ok {
		err = fmt.Errorf("invalid combination of command (%v) and subcommand (%v)", command, subcommand)
		log.Error(err.Error())
		return
	}
	a.setupFunc()
	// Run the action.
	if err = actions.ActionLauncher(a.cfg, command, subcommand); err != nil {
		log.Error("Error: ", err)
	}
	return err
}
