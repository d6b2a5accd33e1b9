package scripts_test

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/fitd/internal/errors"
	"github.com/KirkDiggler/fitd/internal/scripts"
	"github.com/KirkDiggler/fitd/internal/testutils/builders"
)

type ACMDTestSuite struct {
	suite.Suite
}

func TestACMDSuite(t *testing.T) {
	suite.Run(t, new(ACMDTestSuite))
}

func (s *ACMDTestSuite) TestParse_BigEndian() {
	data := builders.NewACMDBuilder().
		WithScript(0x11, 1, 2).
		WithScript(0x22, 3).
		Build()

	table, err := scripts.ParseACMD(data, nil)
	s.Require().NoError(err)
	s.Equal(binary.BigEndian, table.Order)
	s.Equal(uint32(2), table.Version)
	s.Equal([]uint32{0x11, 0x22}, table.Keys())

	first, ok := table.Script(0x11)
	s.Require().True(ok)
	s.Equal("0x00000001\n0x00000002", first.Deserialize())

	last, ok := table.Script(0x22)
	s.Require().True(ok)
	s.Equal("0x00000003", last.Deserialize())

	_, ok = table.Script(0x33)
	s.False(ok)
}

func (s *ACMDTestSuite) TestParse_LittleEndian() {
	data := builders.NewACMDBuilder().
		LittleEndian().
		WithScript(0xDEADBEEF, 0x01020304).
		Build()

	table, err := scripts.ParseACMD(data, nil)
	s.Require().NoError(err)
	s.Equal(binary.LittleEndian, table.Order)
	s.Equal([]uint32{0xDEADBEEF}, table.Keys())

	script, ok := table.Script(0xDEADBEEF)
	s.Require().True(ok)
	acmd, isACMD := script.(*scripts.ACMDScript)
	s.Require().True(isACMD)
	s.Equal([]uint32{0x01020304}, acmd.Words)
}

func (s *ACMDTestSuite) TestParse_EmptyLastScript() {
	data := builders.NewACMDBuilder().
		WithScript(0x11, 7).
		WithScript(0x22).
		Build()

	table, err := scripts.ParseACMD(data, nil)
	s.Require().NoError(err)

	script, ok := table.Script(0x22)
	s.Require().True(ok)
	s.Equal("", script.Deserialize())
}

func (s *ACMDTestSuite) TestParse_DuplicateChecksumKeepsFirst() {
	data := builders.NewACMDBuilder().
		WithScript(0x11, 1).
		WithScript(0x11, 2).
		Build()

	table, err := scripts.ParseACMD(data, nil)
	s.Require().NoError(err)
	s.Equal([]uint32{0x11}, table.Keys())

	script, _ := table.Script(0x11)
	s.Equal("0x00000001", script.Deserialize())
}

func (s *ACMDTestSuite) TestParse_UsesDecoder() {
	data := builders.NewACMDBuilder().WithScript(0x11, 0xAA, 5).Build()
	decoder := &scripts.RawDecoder{Events: scripts.Events{0xAA: {Name: "Wait", Params: 1}}}

	table, err := scripts.ParseACMD(data, decoder)
	s.Require().NoError(err)

	script, _ := table.Script(0x11)
	s.Equal("Wait(0x5)", script.Deserialize())
}

func (s *ACMDTestSuite) TestParse_Damaged() {
	valid := builders.NewACMDBuilder().WithScript(0x11, 1).Build()

	overrun := append([]byte(nil), valid...)
	binary.BigEndian.PutUint32(overrun[8:], 1000)

	badOffset := append([]byte(nil), valid...)
	binary.BigEndian.PutUint32(badOffset[0x14:], 0xFFFF)

	testCases := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "truncated header", data: valid[:8]},
		{name: "bad magic", data: append([]byte("XXXX"), valid[4:]...)},
		{name: "index overrun", data: overrun},
		{name: "offset out of range", data: badOffset},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := scripts.ParseACMD(tc.data, nil)
			s.Require().Error(err)
			s.True(errors.IsDataLoss(err))
		})
	}
}

func (s *ACMDTestSuite) TestLoad() {
	dir := s.T().TempDir()
	path := filepath.Join(dir, "game.bin")
	s.Require().NoError(os.WriteFile(path, builders.NewACMDBuilder().WithScript(0x11, 1).Build(), 0o600))

	table, err := scripts.LoadACMD(path, nil)
	s.Require().NoError(err)
	s.Equal([]uint32{0x11}, table.Keys())

	_, err = scripts.LoadACMD(filepath.Join(dir, "missing.bin"), nil)
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}
