package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/minmaxed/dots-and-boxes/pkg/assess"
)

// Config is resolved once from the command line and never mutated
// afterwards; the turn loop, the renderer and the journal all read from it.
type Config struct {
	Lines       int
	Columns     int
	Search      assess.Options
	HumanGlyph  string
	EngineGlyph string
	JournalDir  string
}

var (
	linesFlag     = flag.Int("lines", 3, "boxes per board column (1-7)")
	columnsFlag   = flag.Int("columns", 3, "boxes per board line (1-7)")
	depthFlag     = flag.Int("depth", 4, "search depth in plies; higher is harder and slower")
	algorithmFlag = flag.String("algorithm", "alphabeta", "engine algorithm: minimax or alphabeta")
	policyFlag    = flag.String("policy", "chain", "leaf heuristic: chain or crude")
	symbolFlag    = flag.String("symbol", "X", "glyph you play with, X or O (you always move first)")
	journalFlag   = flag.String("journal", ".", "directory the finished-game journal is written to")
)

func LoadConfig() (Config, error) {
	flag.Parse()

	algorithm, err := assess.ParseAlgorithm(*algorithmFlag)
	if err != nil {
		return Config{}, err
	}
	policy, err := assess.ParsePolicy(*policyFlag)
	if err != nil {
		return Config{}, err
	}
	if *depthFlag < 1 {
		return Config{}, fmt.Errorf("search depth must be at least 1, got %d", *depthFlag)
	}

	human := strings.ToUpper(*symbolFlag)
	if human != "X" && human != "O" {
		return Config{}, fmt.Errorf("symbol must be X or O, got %q", *symbolFlag)
	}
	engine := "O"
	if human == "O" {
		engine = "X"
	}

	return Config{
		Lines:   *linesFlag,
		Columns: *columnsFlag,
		Search: assess.Options{
			Algorithm: algorithm,
			Policy:    policy,
			Depth:     *depthFlag,
		},
		HumanGlyph:  human,
		EngineGlyph: engine,
		JournalDir:  *journalFlag,
	}, nil
}
