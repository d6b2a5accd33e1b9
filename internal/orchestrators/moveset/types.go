package moveset

import (
	"github.com/KirkDiggler/fitd/internal/names"
	"github.com/KirkDiggler/fitd/internal/scripts"
)

// Output layout, relative to the output directory
const (
	AnimcmdDir   = "animcmd"
	MoveListFile = "fighter.mlist"
	MoveDefExt   = ".acm"
)

// AssembleInput defines the request for assembling move definitions
type AssembleInput struct {
	MoveTable scripts.MoveTable
	// Index may be nil; every move then renders under its hex name.
	Index *names.Index
	// Tables holds the loaded category tables. Missing categories render
	// as empty sections.
	Tables map[scripts.Category]scripts.Table
}

// Move summarizes one written (or failed) move definition
type Move struct {
	Checksum uint32
	Name     string
	Listed   bool
	File     string
	Err      error
}

// AssembleOutput defines the response for assembling move definitions
type AssembleOutput struct {
	// Moves in output order: the move table first, then unlisted moves
	Moves    []Move
	MoveList []string
	Written  int
	Failed   int
}

// RunInput defines the request for a decompile run
type RunInput struct {
	// Target is the .mtable file. The category tables are read from the
	// same directory.
	Target string
	// MotionDir is optional; without it no names are resolved.
	MotionDir string
	OutputDir string
}

// Index sources reported by RunOutput
const (
	IndexSourceNone  = "none"
	IndexSourceScan  = "scan"
	IndexSourceCache = "cache"
)

// RunOutput defines the response for a decompile run
type RunOutput struct {
	RunID string
	// Skipped is set when the target is not a move table
	Skipped     bool
	IndexSource string
	IndexSize   int
	Categories  []scripts.Category
	Assemble    *AssembleOutput
}
