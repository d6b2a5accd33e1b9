package main

import (
	"bytes"
	"encoding/binary"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/fitd/internal/checksum"
	"github.com/KirkDiggler/fitd/internal/errors"
	"github.com/KirkDiggler/fitd/internal/testutils"
	"github.com/KirkDiggler/fitd/internal/testutils/builders"
)

type CLITestSuite struct {
	suite.Suite
	dir    string
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLITestSuite))
}

func (s *CLITestSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.stdout = &bytes.Buffer{}
	s.stderr = &bytes.Buffer{}
}

func (s *CLITestSuite) execute(args ...string) error {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(s.stdout)
	cmd.SetErr(s.stderr)
	return cmd.Execute()
}

func (s *CLITestSuite) write(rel string, data []byte) string {
	return testutils.WriteFile(s.T(), s.dir, rel, data)
}

func (s *CLITestSuite) TestHash() {
	s.Require().NoError(s.execute("hash", "Attack11", "WAIT1"))

	s.Equal(
		checksum.Format(checksum.Name("attack11"))+" Attack11\n"+
			checksum.Format(checksum.Name("wait1"))+" WAIT1\n",
		s.stdout.String(),
	)
}

func (s *CLITestSuite) TestNames() {
	motion := filepath.Join(s.dir, "motion")
	s.write("motion/c00.pac", builders.NewArchiveBuilder().WithEntry("A01Wait1.omo").Build())

	s.Require().NoError(s.execute("names", motion))

	s.Contains(s.stdout.String(), checksum.Format(checksum.Name("Wait1"))+" Wait1\n")
	s.Contains(s.stdout.String(), " Wait1_C2\n")
}

func (s *CLITestSuite) TestDecompile() {
	attack := checksum.Name("Attack11")
	target := s.write("body/fighter.mtable", builders.BuildMoveTable(binary.BigEndian, attack))
	s.write("body/game.bin", builders.NewACMDBuilder().WithScript(attack, 0x5766F889).Build())
	s.write("motion/c00.pac", builders.NewArchiveBuilder().WithEntry("A01Attack11.omo").Build())
	s.write("events.ini", []byte("[0x5766F889]\nname = End\n"))
	output := filepath.Join(s.dir, "out")

	s.Require().NoError(s.execute(target,
		"-o", output,
		"-m", filepath.Join(s.dir, "motion"),
		"-e", filepath.Join(s.dir, "events.ini"),
	))

	s.Equal("Attack11\n", testutils.ReadFile(s.T(), output, "fighter.mlist"))
	s.Contains(testutils.ReadFile(s.T(), output, "animcmd/Attack11.acm"), "\t\tEnd()\n")
	s.Contains(s.stdout.String(), "> All tasks finished")
}

func (s *CLITestSuite) TestDecompile_UnrecognizedTarget() {
	s.Require().NoError(s.execute(filepath.Join(s.dir, "fighter.mscsb"), "-o", filepath.Join(s.dir, "out")))

	s.Contains(s.stdout.String(), "> All tasks finished")
	s.NoDirExists(filepath.Join(s.dir, "out"))
}

func (s *CLITestSuite) TestDecompile_MissingMoveTable() {
	err := s.execute(filepath.Join(s.dir, "fighter.mtable"), "-o", filepath.Join(s.dir, "out"))

	s.Require().Error(err)
	s.Equal(66, errors.GetCode(err).ExitCode())
}

func (s *CLITestSuite) TestNoArgsPrintsHelp() {
	s.Require().NoError(s.execute())
	s.Contains(s.stdout.String(), "fitd [fighter.mtable]")
}

func (s *CLITestSuite) TestBadEventsFile() {
	target := s.write("body/fighter.mtable", nil)
	events := s.write("events.ini", []byte("[notahash]\nname = End\n"))

	err := s.execute(target, "-o", filepath.Join(s.dir, "out"), "-e", events)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}
