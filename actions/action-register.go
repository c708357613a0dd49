package actions

import (
	"fmt"
	"reflect"

	"github.com/relloyd/dwhpipe/constants"
)

type Action struct {
	FnAction func(actionCfg interface{}) error // the function to execute the action
	CfgType  reflect.Type                      // the pointer type FnAction expects
}

// ActionFuncs is a register of all supported actions by command and subcommand.
// Commands without subcommands use the empty string.
var ActionFuncs = map[string]map[string]Action{
	constants.ActionFuncsCommandRender: {
		"": Action{FnAction: runRender, CfgType: reflect.TypeOf(&RenderConfig{})},
	},
	constants.ActionFuncsCommandPlan: {
		"": Action{FnAction: runPlan, CfgType: reflect.TypeOf(&PlanConfig{})},
	},
	constants.ActionFuncsCommandConfig: {
		constants.ActionFuncsSubCommandShow: Action{FnAction: runShowConfig, CfgType: reflect.TypeOf(&ShowConfigConfig{})},
	},
}

// GetAction fetches the action registered for command and subcommand.
func GetAction(command string, subcommand string) (Action, error) {
	if sub, ok := ActionFuncs[command]; ok {
		if a, ok := sub[subcommand]; ok {
			return a, nil
		}
	}
	return Action{}, fmt.Errorf("invalid combination of command (%v) and subcommand (%v)", command, subcommand)
}

// ActionLauncher will find the Action for command and subcommand and execute it using cfg,
// which must be a pointer to the action's config struct.
func ActionLauncher(cfg interface{}, command string, subcommand string) error {
	v := reflect.ValueOf(cfg)
	if v.Kind() != reflect.Ptr {
		return fmt.Errorf("expected pointer to config in variable cfg to be supplied to ActionLauncher")
	}
	a, err := GetAction(command, subcommand)
	if err != nil {
		return err
	}
	if v.Type() != a.CfgType {
		return fmt.Errorf("action %v %v expects config of type %v but got %v", command, subcommand, a.CfgType, v.Type())
	}
	return a.FnAction(cfg)
}

func runRender(cfg interface{}) error {
	return RunRender(cfg.(*RenderConfig))
}

func runPlan(cfg interface{}) error {
	return RunPlan(cfg.(*PlanConfig))
}

func runShowConfig(cfg interface{}) error {
	return RunShowConfig(cfg.(*ShowConfigConfig))
}
