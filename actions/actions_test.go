package actions

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/ghodss/yaml"
	"github.com/relloyd/dwhpipe/catalog"
	"github.com/relloyd/dwhpipe/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRole = "arn:aws:iam::123456789012:role/dwhRole"

func writeTestConfig(t *testing.T) string {
	t.Helper()
	t.Setenv(constants.EnvVarIAMRoleARN, "")
	t.Setenv(constants.EnvVarS3LogData, "")
	t.Setenv(constants.EnvVarS3SongData, "")
	p := filepath.Join(t.TempDir(), constants.ConfigFileName)
	content := "[CLUSTER]\nHOST=localhost\nDB_PASSWORD=secret\n\n[IAM_ROLE]\nARN=" + testRole + "\n"
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestParseStages(t *testing.T) {
	got, err := parseStages(nil)
	require.NoError(t, err)
	assert.Equal(t, catalog.Kinds, got)
	got, err = parseStages([]string{"insert, drop"})
	require.NoError(t, err)
	assert.Equal(t, []catalog.Kind{catalog.Drop, catalog.Insert}, got)
	got, err = parseStages([]string{"copy", "ALL"})
	require.NoError(t, err)
	assert.Equal(t, catalog.Kinds, got)
	_, err = parseStages([]string{"vacuum"})
	assert.Error(t, err)
}

func TestRunRenderSQL(t *testing.T) {
	var b bytes.Buffer
	cfg := &RenderConfig{LogLevel: "error", Dialect: "redshift", Output: "sql", ConfigFile: writeTestConfig(t), Out: &b}
	require.NoError(t, RunRender(cfg))
	out := b.String()
	assert.True(t, strings.HasPrefix(out, "-- dwhpipe redshift statements generated "))
	assert.Equal(t, 21, strings.Count(out, constants.StatementTerminator+"\n"))
	assert.Equal(t, 1, strings.Count(out, "credentials 'aws_iam_role="+testRole+"'\n    format as json 'auto ignorecase';"))
	assert.Less(t, strings.Index(out, "-- staging_events_table_drop"), strings.Index(out, "-- staging_events_table_create"))
	assert.Less(t, strings.Index(out, "-- staging_songs_copy"), strings.Index(out, "-- user_table_insert"))
}

func TestRunRenderStages(t *testing.T) {
	var b bytes.Buffer
	cfg := &RenderConfig{LogLevel: "error", Dialect: "snowflake", Output: "sql", ConfigFile: writeTestConfig(t), Stages: []string{"copy"}, Out: &b}
	require.NoError(t, RunRender(cfg))
	out := b.String()
	assert.Equal(t, 2, strings.Count(out, "COPY INTO"))
	assert.NotContains(t, out, "CREATE TABLE")
}

func TestRunRenderStructured(t *testing.T) {
	p := writeTestConfig(t)
	var b bytes.Buffer
	require.NoError(t, RunRender(&RenderConfig{LogLevel: "error", Dialect: "duckdb", Output: "json", ConfigFile: p, Out: &b}))
	var doc struct {
		Dialect string `json:"dialect"`
		Copy    []struct {
			Name   string   `json:"name"`
			Kind   string   `json:"kind"`
			Rank   int      `json:"rank"`
			Params []string `json:"params"`
			SQL    string   `json:"sql"`
		} `json:"copy"`
		Insert []json.RawMessage `json:"insert"`
	}
	require.NoError(t, json.Unmarshal(b.Bytes(), &doc))
	assert.Equal(t, "duckdb", doc.Dialect)
	require.Len(t, doc.Copy, 2)
	assert.Equal(t, "staging_songs_copy", doc.Copy[1].Name)
	assert.Equal(t, "copy", doc.Copy[1].Kind)
	assert.Equal(t, 2, doc.Copy[1].Rank)
	assert.Contains(t, doc.Copy[0].SQL, "read_json('"+constants.DefaultLogDataURL+"'")
	assert.Len(t, doc.Insert, 5)

	b.Reset()
	require.NoError(t, RunRender(&RenderConfig{LogLevel: "error", Dialect: "redshift", Output: "yaml", ConfigFile: p, Stages: []string{"drop"}, Out: &b}))
	var m map[string]interface{}
	require.NoError(t, yaml.Unmarshal(b.Bytes(), &m))
	assert.Equal(t, "redshift", m["dialect"])
	assert.Len(t, m["drop"], 7)
	assert.NotContains(t, m, "create")
}

func TestRunRenderErrors(t *testing.T) {
	p := writeTestConfig(t)
	err := RunRender(&RenderConfig{LogLevel: "error", Output: "sql", ConfigFile: p})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dialect")
	err = RunRender(&RenderConfig{LogLevel: "error", Dialect: "oracle", Output: "sql", ConfigFile: p})
	assert.True(t, err != nil && strings.Contains(err.Error(), "unknown dialect"))
	err = RunRender(&RenderConfig{LogLevel: "error", Dialect: "redshift", Output: "xml", ConfigFile: p, Out: &bytes.Buffer{}})
	assert.True(t, err != nil && strings.Contains(err.Error(), "unsupported output format"))
	err = RunRender(&RenderConfig{LogLevel: "error", Dialect: "redshift", Output: "sql", ConfigFile: filepath.Join(t.TempDir(), "nope.cfg")})
	assert.True(t, err != nil && strings.Contains(err.Error(), "error loading configuration"))
	t.Setenv(constants.EnvVarIAMRoleARN, "not-an-arn")
	err = RunRender(&RenderConfig{LogLevel: "error", Dialect: "redshift", Output: "sql", ConfigFile: p})
	assert.True(t, err != nil && strings.Contains(err.Error(), "invalid configuration"))
}

func TestWriteSQL(t *testing.T) {
	cat, err := catalog.New(testLogger(), catalog.Redshift, catalog.Params{
		constants.ParamIAMRole:  testRole,
		constants.ParamLogData:  constants.DefaultLogDataURL,
		constants.ParamSongData: constants.DefaultSongDataURL,
	})
	require.NoError(t, err)
	var b bytes.Buffer
	now := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, writeSQL(&b, cat, []catalog.Kind{catalog.Drop}, now))
	lines := strings.Split(b.String(), "\n")
	assert.Equal(t, "-- dwhpipe redshift statements generated 20200102T030405", lines[0])
	assert.Equal(t, "", lines[1])
	assert.Equal(t, "-- staging_events_table_drop", lines[2])
	assert.Equal(t, "drop table if exists staging_events;", lines[3])
	// The header stamp of a fresh script matches the shared timestamp pattern.
	b.Reset()
	require.NoError(t, writeSQL(&b, cat, []catalog.Kind{catalog.Drop}, time.Now()))
	re := regexp.MustCompile("^-- dwhpipe redshift statements generated " + constants.TimeFormatYearSecondsRgx + "\n")
	assert.Regexp(t, re, b.String())
}

func TestRunPlan(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, RunPlan(&PlanConfig{LogLevel: "error", Out: &b}))
	out := b.String()
	for _, s := range catalog.Outline() {
		assert.Contains(t, out, s.Name)
	}
	assert.Contains(t, out, "songplay_table_drop (cascade)")
	assert.Contains(t, out, "IAMRole, LogData")
	assert.Less(t, strings.Index(out, "songplay_table_create"), strings.Index(out, "staging_events_copy"))

	b.Reset()
	require.NoError(t, RunPlan(&PlanConfig{LogLevel: "error", Output: "json", Out: &b}))
	var outline []catalog.Statement
	require.NoError(t, json.Unmarshal(b.Bytes(), &outline))
	assert.Len(t, outline, 21)

	assert.Error(t, RunPlan(&PlanConfig{}))
}

func TestRunShowConfig(t *testing.T) {
	p := writeTestConfig(t)
	var b bytes.Buffer
	require.NoError(t, RunShowConfig(&ShowConfigConfig{LogLevel: "error", Output: "yaml", Dialect: "redshift", ConfigFile: p, Out: &b}))
	out := b.String()
	assert.NotContains(t, out, "secret")
	assert.NotContains(t, out, "123456789012")
	assert.Contains(t, out, "role/dwhRole")
	assert.Contains(t, out, constants.DefaultSongDataURL)

	t.Setenv(constants.EnvVarS3LogData, "/tmp/events.json")
	err := RunShowConfig(&ShowConfigConfig{LogLevel: "error", Output: "yaml", Dialect: "redshift", ConfigFile: p, Out: &b})
	assert.True(t, err != nil && strings.Contains(err.Error(), "not valid for redshift"))
}

func TestActionLauncher(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, ActionLauncher(&PlanConfig{LogLevel: "error", Out: &b}, constants.ActionFuncsCommandPlan, ""))
	assert.Contains(t, b.String(), "songplay_table_insert")
	assert.Error(t, ActionLauncher(PlanConfig{}, constants.ActionFuncsCommandPlan, ""))
	assert.Error(t, ActionLauncher(&RenderConfig{}, constants.ActionFuncsCommandPlan, ""))
	assert.Error(t, ActionLauncher(&PlanConfig{}, "junk", ""))
	_, err := GetAction(constants.ActionFuncsCommandConfig, constants.ActionFuncsSubCommandShow)
	assert.NoError(t, err)
}
