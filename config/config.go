// Package config loads the dwh.cfg file that names the warehouse cluster, the IAM role used
// by COPY and the S3 source locations. Environment variables override values from the file.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/relloyd/dwhpipe/aws/iam"
	"github.com/relloyd/dwhpipe/aws/s3"
	"github.com/relloyd/dwhpipe/catalog"
	"github.com/relloyd/dwhpipe/constants"
	"github.com/relloyd/dwhpipe/helper"
	"gopkg.in/ini.v1"
)

// FileNotFoundError denotes failing to find configuration file.
type FileNotFoundError struct {
	name string
}

// Error returns the formatted configuration error.
func (f FileNotFoundError) Error() string {
	return fmt.Sprintf("config file %q not found", f.name)
}

type SectionNotFoundError struct {
	configFile string
	section    string
}

func (s SectionNotFoundError) Error() string {
	return fmt.Sprintf("section [%v] not found in config file %q", s.section, s.configFile)
}

type KeyNotFoundError struct {
	configFile string
	key        string
	err        error
}

func (k KeyNotFoundError) Error() string {
	if k.err != nil {
		return fmt.Sprintf("key %q not found in config file %q: %v", k.key, k.configFile, k.err)
	}
	return fmt.Sprintf("key %q not found in config file %q", k.key, k.configFile)
}

// Cluster holds the [CLUSTER] section. It is informational for the orchestrator that connects;
// nothing in this module opens a connection.
type Cluster struct {
	Host       string `mapstructure:"HOST" json:"host,omitempty"`
	DBName     string `mapstructure:"DB_NAME" json:"dbName,omitempty"`
	DBUser     string `mapstructure:"DB_USER" json:"dbUser,omitempty"`
	DBPassword string `mapstructure:"DB_PASSWORD" json:"dbPassword,omitempty"`
	DBPort     int    `mapstructure:"DB_PORT" json:"dbPort,omitempty"`
}

// Sources holds the [S3] section.
type Sources struct {
	LogData  string `mapstructure:"LOG_DATA" json:"logData" mandatory:"yes" errorTxt:"S3 log data location"`
	SongData string `mapstructure:"SONG_DATA" json:"songData" mandatory:"yes" errorTxt:"S3 song data location"`
}

// Config is the parsed dwh.cfg plus environment overrides.
type Config struct {
	Path    string  `json:"path,omitempty"`
	Cluster Cluster `json:"cluster"`
	IAMRole string  `json:"iamRole" mandatory:"yes" errorTxt:"IAM role ARN"`
	S3      Sources `json:"s3"`
}

// Load reads the INI file at path and applies environment overrides.
// If path is empty the default location is used and a missing file is not an error,
// so that all values can come from the environment.
// The IAM role must be found in one place or the other.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	c := &Config{S3: Sources{LogData: constants.DefaultLogDataURL, SongData: constants.DefaultSongDataURL}}
	var f *ini.File
	if _, err := os.Stat(path); err == nil {
		c.Path = path
		if f, err = ini.Load(path); err != nil {
			return nil, fmt.Errorf("error reading config file %q: %w", path, err)
		}
		if err = c.decode(f); err != nil {
			return nil, err
		}
	} else if explicit {
		return nil, FileNotFoundError{name: path}
	}
	c.applyEnv()
	if c.IAMRole == "" {
		if f == nil {
			return nil, fmt.Errorf("no config file found at %q and %v is not set", path, constants.EnvVarIAMRoleARN)
		}
		if !f.HasSection(constants.ConfigSectionIAMRole) {
			return nil, SectionNotFoundError{configFile: path, section: constants.ConfigSectionIAMRole}
		}
		return nil, KeyNotFoundError{configFile: path, key: constants.ConfigSectionIAMRole, err: fmt.Errorf("section has no values")}
	}
	return c, nil
}

func (c *Config) decode(f *ini.File) error {
	if s, err := f.GetSection(constants.ConfigSectionCluster); err == nil {
		if err = decodeSection(s, &c.Cluster); err != nil {
			return fmt.Errorf("error decoding section [%v] in config file %q: %w", s.Name(), c.Path, err)
		}
	}
	if s, err := f.GetSection(constants.ConfigSectionIAMRole); err == nil {
		// The role is the first value in the section whatever its key is called.
		for _, k := range s.Keys() {
			if v := unquote(k.Value()); v != "" {
				c.IAMRole = v
				break
			}
		}
	}
	if s, err := f.GetSection(constants.ConfigSectionS3); err == nil {
		if err = decodeSection(s, &c.S3); err != nil {
			return fmt.Errorf("error decoding section [%v] in config file %q: %w", s.Name(), c.Path, err)
		}
	}
	return nil
}

// decodeSection copies the non-empty values of s into the struct pointed to by out.
func decodeSection(s *ini.Section, out interface{}) error {
	m := make(map[string]interface{})
	for k, v := range s.KeysHash() {
		if v = unquote(v); v != "" {
			m[strings.ToUpper(k)] = v
		}
	}
	d, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return d.Decode(m)
}

func unquote(s string) string {
	return strings.Trim(strings.TrimSpace(s), `'"`)
}

func (c *Config) applyEnv() {
	_ = helper.ReadValueFromEnv(constants.EnvVarIAMRoleARN, &c.IAMRole)
	_ = helper.ReadValueFromEnv(constants.EnvVarS3LogData, &c.S3.LogData)
	_ = helper.ReadValueFromEnv(constants.EnvVarS3SongData, &c.S3.SongData)
	c.IAMRole = strings.TrimSpace(c.IAMRole)
}

// Validate checks the values that will be written into SQL for dialect d.
// S3 locations are only checked for dialects that load from S3.
func (c *Config) Validate(d catalog.Dialect) error {
	if err := helper.ValidateStructIsPopulated(c); err != nil {
		return err
	}
	if _, err := iam.ParseRole(c.IAMRole); err != nil {
		return err
	}
	if d == catalog.DuckDB {
		return nil
	}
	for _, v := range []string{c.S3.LogData, c.S3.SongData} {
		if _, err := s3.ParseURL(v); err != nil {
			return err
		}
	}
	return nil
}

// CatalogParams returns the parameter set that catalog.New renders templates with.
func (c *Config) CatalogParams() catalog.Params {
	return catalog.Params{
		constants.ParamIAMRole:  c.IAMRole,
		constants.ParamLogData:  c.S3.LogData,
		constants.ParamSongData: c.S3.SongData,
	}
}

// Redacted returns a copy of c that is safe to print.
func (c *Config) Redacted() Config {
	r := *c
	if r.Cluster.DBPassword != "" {
		r.Cluster.DBPassword = constants.RedactedText
	}
	if role, err := iam.ParseRole(r.IAMRole); err == nil {
		r.IAMRole = role.String()
	} else {
		r.IAMRole = helper.Redact(r.IAMRole, 12, constants.RedactedText)
	}
	return r
}

func (c *Config) String() string {
	r := c.Redacted()
	return fmt.Sprintf("path=%q host=%q db=%q user=%q port=%v iamRole=%q logData=%q songData=%q",
		r.Path, r.Cluster.Host, r.Cluster.DBName, r.Cluster.DBUser, r.Cluster.DBPort, r.IAMRole, r.S3.LogData, r.S3.SongData)
}
