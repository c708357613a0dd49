package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/relloyd/dwhpipe/actions"
	"github.com/relloyd/dwhpipe/constants"
)

var results = map[string]int{}

func TestSetupTwelveFactorMode(t *testing.T) {
	t.Setenv(envVarTwelveFactorMode, "")
	setupTwelveFactorMode()
	if twelveFactorMode {
		t.Fatal("expected twelveFactorMode to be false; got true")
	}
	t.Setenv(envVarTwelveFactorMode, "1")
	setupTwelveFactorMode()
	if !twelveFactorMode {
		t.Fatal("expected twelveFactorMode to be true; got false")
	}
	twelveFactorMode = false
}

func TestExecute12FactorMode(t *testing.T) {
	var b bytes.Buffer
	mockActions := map[string]twelveFactorAction{
		constants.ActionFuncsCommandPlan: {
			setupFunc: func() {
				results[constants.ActionFuncsCommandPlan]++
				planCfg.Out = &b
			},
			cfg: &planCfg,
		},
	}
	var osVars = map[string]string{
		envVarLogLevel:             "error",
		envVarStackDump:            "1",
		envVarStages:               "copy",
		constants.EnvVarIAMRoleARN: "arn:aws:iam::123456789012:role/dwhRole",
	}
	for k, v := range osVars {
		t.Setenv(k, v)
	}

	// Test 1 - action setup and runner are called.
	t.Setenv(envVarCommand, constants.ActionFuncsCommandPlan)
	t.Setenv(envVarSubcommand, "")
	if err := execute12FactorMode(mockActions); err != nil {
		t.Fatalf("Test 1 failed: expected nil error got error: %v", err)
	}
	if results[constants.ActionFuncsCommandPlan] != 1 {
		t.Fatalf("Test 1 failed: expected setup to be called once; got %v", results[constants.ActionFuncsCommandPlan])
	}
	if !strings.Contains(b.String(), "songplay_table_insert") {
		t.Fatalf("Test 1 failed: expected plan output; got %q", b.String())
	}

	// Test 2 - invalid command + subcommand.
	t.Setenv(envVarCommand, "invalidCommand")
	t.Setenv(envVarSubcommand, "invalidSubcommand")
	if err := execute12FactorMode(mockActions); err == nil {
		t.Fatal("Test 2 failed, expected: error; got: nil")
	}

	// Test 3 - all twelveFactorVars are fetched from the environment.
	for k, expected := range osVars {
		if got := twelveFactorVars[k]; got != expected {
			t.Fatalf("Test 3 failed: expected %v = %v; got: %v", k, expected, got)
		}
	}

	// Test 4 - sensitive vars are set up.
	if _, sensitive := twelveFactorVarsSensitive[constants.EnvVarIAMRoleARN]; !sensitive {
		t.Fatal("Test 4 failed: expected the IAM role to be registered in map twelveFactorVarsSensitive")
	}
}

func TestExecute12FactorRender(t *testing.T) {
	p := filepath.Join(t.TempDir(), constants.ConfigFileName)
	if err := os.WriteFile(p, []byte("[IAM_ROLE]\nARN=arn:aws:iam::123456789012:role/dwhRole\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(constants.EnvVarIAMRoleARN, "")
	t.Setenv(envVarLogLevel, "error")
	t.Setenv(envVarCommand, constants.ActionFuncsCommandRender)
	t.Setenv(envVarSubcommand, "")
	t.Setenv(envVarStages, "drop, create")
	saved := renderCfg
	defer func() { renderCfg = saved }()
	renderCfg.ConfigFile = p
	renderCfg.LogLevel = "error"
	var b bytes.Buffer
	acts := map[string]twelveFactorAction{
		constants.ActionFuncsCommandRender: {
			setupFunc: func() {
				twelveFactorActions[constants.ActionFuncsCommandRender].setupFunc()
				renderCfg.Out = &b
			},
			cfg: &renderCfg,
		},
	}
	if err := execute12FactorMode(acts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(renderCfg.Stages) != 2 || renderCfg.Stages[1] != "create" {
		t.Fatalf("expected stages from the environment; got %v", renderCfg.Stages)
	}
	if got := strings.Count(b.String(), ";\n"); got != 14 {
		t.Fatalf("expected 14 statements; got %v", got)
	}
}

func TestTwelveFactorActions(t *testing.T) {
	// Every registered action must be reachable in twelveFactorMode.
	for command, subs := range actions.ActionFuncs {
		for subcommand, a := range subs {
			key := twelveFactorActionKey(command, subcommand)
			tfa, ok := twelveFactorActions[key]
			if !ok {
				t.Fatalf("twelveFactorActions does not handle action %v", key)
			}
			if tfa.cfg == nil {
				t.Fatalf("twelveFactorActions has no config for action %v", key)
			}
			if a.CfgType == nil {
				t.Fatalf("action %v has no config type", key)
			}
		}
	}
}
