package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/fitd/internal/config"
	"github.com/KirkDiggler/fitd/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
	cmd *cobra.Command
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) SetupTest() {
	s.cmd = &cobra.Command{Use: "fitd"}
	flags := s.cmd.Flags()
	flags.StringP("output", "o", config.DefaultOutput, "")
	flags.StringP("motion", "m", "", "")
	flags.StringP("events", "e", "", "")
	flags.String("redis", "", "")
	flags.Duration("cache-ttl", config.DefaultCacheTTL, "")
	flags.CountP("verbose", "v", "")
	flags.Bool("json-logs", false, "")
}

func (s *ConfigTestSuite) load(args []string, configFile string) (*config.Config, error) {
	s.Require().NoError(s.cmd.ParseFlags(args))
	v := config.NewViper()
	s.Require().NoError(config.BindFlags(v, s.cmd))
	return config.Load(v, configFile)
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := s.load(nil, "")
	s.Require().NoError(err)

	s.Equal(config.DefaultOutput, cfg.Output)
	s.Equal(config.DefaultCacheTTL, cfg.CacheTTL)
	s.Empty(cfg.Motion)
	s.Empty(cfg.Redis)
	s.Zero(cfg.Verbose)
	s.False(cfg.JSONLogs)
}

func (s *ConfigTestSuite) TestFlags() {
	cfg, err := s.load([]string{"-o", "out", "-m", "motion", "-vv", "--json-logs", "--cache-ttl", "1h"}, "")
	s.Require().NoError(err)

	s.Equal("out", cfg.Output)
	s.Equal("motion", cfg.Motion)
	s.Equal(2, cfg.Verbose)
	s.True(cfg.JSONLogs)
	s.Equal(time.Hour, cfg.CacheTTL)
}

func (s *ConfigTestSuite) TestEnvironment() {
	s.T().Setenv("FITD_REDIS", "localhost:6379")
	s.T().Setenv("FITD_JSON_LOGS", "true")

	cfg, err := s.load(nil, "")
	s.Require().NoError(err)

	s.Equal("localhost:6379", cfg.Redis)
	s.True(cfg.JSONLogs)
}

func (s *ConfigTestSuite) TestConfigFile() {
	path := filepath.Join(s.T().TempDir(), "fitd.yaml")
	s.Require().NoError(os.WriteFile(path, []byte("motion: /data/motion\nevents: events.ini\noutput: from-file\n"), 0o600))

	cfg, err := s.load([]string{"-o", "from-flag"}, path)
	s.Require().NoError(err)

	s.Equal("/data/motion", cfg.Motion)
	s.Equal("events.ini", cfg.Events)
	s.Equal("from-flag", cfg.Output)
}

func (s *ConfigTestSuite) TestMissingConfigFile() {
	_, err := s.load(nil, filepath.Join(s.T().TempDir(), "nope.toml"))
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ConfigTestSuite) TestValidate() {
	testCases := []struct {
		name    string
		cfg     config.Config
		wantErr string
	}{
		{name: "valid", cfg: config.Config{Output: "out"}},
		{name: "empty output", cfg: config.Config{Output: " "}, wantErr: "output"},
		{name: "negative ttl", cfg: config.Config{Output: "out", CacheTTL: -time.Second}, wantErr: "cache_ttl"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.cfg.Validate()
			if tc.wantErr == "" {
				s.NoError(err)
				return
			}
			s.Require().Error(err)
			s.Contains(err.Error(), tc.wantErr)
		})
	}
}
