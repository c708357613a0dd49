package cmd

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/relloyd/dwhpipe/catalog"
	"github.com/relloyd/dwhpipe/constants"
	"github.com/relloyd/dwhpipe/helper"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type cliFlag struct {
	name      string // name of flag
	val       string // default value
	shortHand string // single character name for the flag
	desc      string // description of the flag; the long text
}

type cliFlags map[string]cliFlag

var switches = cliFlags{
	"log-level": cliFlag{name: "log-level", shortHand: "l",
		desc: "Log level: \"error | warn | info | debug | trace\""},
	"dialect": cliFlag{name: "dialect", shortHand: "d",
		desc: "Warehouse dialect to render statements for: " + dialectNames()},
	"output": cliFlag{name: "output", shortHand: "o",
		desc: "Output format: \"sql\" prints a script terminated by semicolons, \n" +
			"\"yaml\" or \"json\" print the statements with their name, kind, rank and parameters"},
	"plan-output": cliFlag{name: "output", shortHand: "o",
		desc: "Specify \"yaml\" or \"json\" to print the plan as a document instead of a table"},
	"config-output": cliFlag{name: "output", shortHand: "o",
		desc: "Output format: \"yaml\" or \"json\""},
	"config-file": cliFlag{name: "config", shortHand: "c",
		desc: fmt.Sprintf("INI `<file>` with sections [%v], [%v] and [%v] (default: ./%v, else ~/%v/%v)",
			constants.ConfigSectionCluster, constants.ConfigSectionIAMRole, constants.ConfigSectionS3,
			constants.ConfigFileName, constants.ConfigDir, constants.ConfigFileName)},
	"validate-dialect": cliFlag{name: "dialect", shortHand: "d",
		desc: "Optionally validate the configuration for this dialect: " + dialectNames()},
}

func dialectNames() string {
	names := make([]string, 0, len(catalog.Dialects))
	for _, d := range catalog.Dialects {
		names = append(names, string(d))
	}
	return strings.Join(names, " | ")
}

// addFlag add a flag to cobra.Command c, based on the type of targetVar (which must be a pointer).
// The name of the flag is looked up in map, cliFlags.
// When running in twelveFactorMode, the targetVar is populated using the value of environment variable for the
// flag's long name, or if not set then the supplied default value is used.
// The flag is marked as required in Cobra based on the value of required.
// Supply a value for desc2 to append to the existing description found in map cliFlags.
func (f *cliFlags) addFlag(c *cobra.Command, targetVar interface{}, name string, defaultValue string, required bool, desc2 string) {
	v := reflect.ValueOf(targetVar)
	if v.Kind() != reflect.Ptr {
		fmt.Println("error adding flag: targetVar must be a pointer")
		os.Exit(1)
	}
	sw := f.getCliFlag(name, defaultValue) // get the cliFlag details, with defaults taken from env or the supplied defaultValue
	desc := sw.desc + desc2                // create the full flag description for use below
	// Apply the flag.
	switch p := targetVar.(type) {
	case *string:
		if twelveFactorMode {
			*p = sw.val
		} else {
			c.Flags().StringVarP(p, sw.name, sw.shortHand, sw.val, desc)
		}
	case *bool:
		defaultBool := helper.GetTrueFalseStringAsBool(sw.val)
		if twelveFactorMode {
			*p = defaultBool
		} else {
			c.Flags().BoolVarP(p, sw.name, sw.shortHand, defaultBool, desc)
			mustSetFlag(c.Flags(), sw.name, fmt.Sprintf("%v", defaultBool))
		}
	default:
		panic("Error: unhandled CLI flag target value type")
	}
	// Optionally mark the flag as mandatory.
	if required && !twelveFactorMode { // if the flag is required...
		_ = c.MarkFlagRequired(sw.name)
	}
}

// getCliFlag fetches the value of name from the environment, when running in twelveFactorMode.
// If a value cannot be found then use the supplied defaultValue in its place.
func (f *cliFlags) getCliFlag(name string, defaultValue string) cliFlag {
	s, ok := (*f)[name]
	if !ok {
		panic(fmt.Sprintf("unregistered CLI flag, %q", name))
	}
	s.val = defaultValue
	if twelveFactorMode { // if we should read env vars...
		// The env var follows the long name so that flags shared between commands share a variable.
		s.val = helper.ReadValueFromEnvWithDefault(helper.FlagNameToEnvVar(s.name), defaultValue)
	}
	return s
}

func mustSetFlag(f *pflag.FlagSet, name string, val string) {
	if err := f.Set(name, val); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// getStagesFromArgsFunc returns a func that cobra uses to validate the statement kinds supplied as args.
// It saves the args in stages.
func getStagesFromArgsFunc(stages *[]string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		for _, a := range args {
			for _, s := range helper.CsvToStringSliceTrimSpaces(a) {
				if strings.EqualFold(s, constants.StageAll) {
					continue
				}
				if _, err := catalog.ParseKind(s); err != nil {
					return errors.New("please supply stages from: all, drop, create, copy, insert")
				}
			}
		}
		*stages = args
		return nil
	}
}
