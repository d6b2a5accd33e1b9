// Package config resolves the fitd settings from flags, FITD_* environment
// variables and an optional config file.
package config

import (
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/KirkDiggler/fitd/internal/errors"
)

// Setting keys
const (
	KeyOutput   = "output"
	KeyMotion   = "motion"
	KeyEvents   = "events"
	KeyRedis    = "redis"
	KeyCacheTTL = "cache_ttl"
	KeyVerbose  = "verbose"
	KeyJSONLogs = "json_logs"
)

// Defaults
const (
	DefaultOutput   = "output"
	DefaultCacheTTL = 24 * time.Hour
)

// flag name for each key that has one
var flagNames = map[string]string{
	KeyOutput:   "output",
	KeyMotion:   "motion",
	KeyEvents:   "events",
	KeyRedis:    "redis",
	KeyCacheTTL: "cache-ttl",
	KeyVerbose:  "verbose",
	KeyJSONLogs: "json-logs",
}

// Config holds the resolved settings of one run
type Config struct {
	Output   string
	Motion   string
	Events   string
	Redis    string
	CacheTTL time.Duration
	Verbose  int
	JSONLogs bool
}

// Validate checks the resolved settings
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if strings.TrimSpace(c.Output) == "" {
		vb.RequiredField(KeyOutput)
	}
	if c.CacheTTL < 0 {
		vb.Field(KeyCacheTTL, "must not be negative")
	}
	if c.Verbose < 0 {
		vb.Field(KeyVerbose, "must not be negative")
	}
	return vb.Build()
}

// NewViper returns a viper instance with defaults and FITD_* environment
// lookup.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("FITD")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyOutput, DefaultOutput)
	v.SetDefault(KeyCacheTTL, DefaultCacheTTL)
	v.SetDefault(KeyVerbose, 0)
	v.SetDefault(KeyJSONLogs, false)
	return v
}

// BindFlags binds every flag of cmd that backs a setting key. Flags the
// command does not define are skipped.
func BindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for key, name := range flagNames {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return errors.WrapWithCodef(err, errors.CodeInternal, "failed to bind flag --%s", name)
		}
	}
	return nil
}

// Load reads the optional config file and resolves the settings. Flags set
// on the command line win over environment variables, which win over the
// file, which wins over defaults.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument,
				"failed to read config file %s", configFile).WithPath(configFile)
		}
	}

	cfg := &Config{
		Output:   v.GetString(KeyOutput),
		Motion:   v.GetString(KeyMotion),
		Events:   v.GetString(KeyEvents),
		Redis:    v.GetString(KeyRedis),
		CacheTTL: v.GetDuration(KeyCacheTTL),
		Verbose:  v.GetInt(KeyVerbose),
		JSONLogs: v.GetBool(KeyJSONLogs),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
