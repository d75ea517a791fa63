package config

import (
	"testing"

	"github.com/aldekein/chesscore/internal/board"
)

func TestConfigureParsesKnownTokens(t *testing.T) {
	pos := board.New()
	Configure(pos, false, "d=4 e=mob n=100000 s=ab", 1)

	if pos.MaxDepth() != 4 {
		t.Errorf("MaxDepth = %d, want 4", pos.MaxDepth())
	}
	if pos.EvalMode() != board.EvalMob {
		t.Errorf("EvalMode = %d, want EvalMob", pos.EvalMode())
	}
	if pos.MaxNodes() != 100000 {
		t.Errorf("MaxNodes = %d, want 100000", pos.MaxNodes())
	}
	if pos.SearchMode() != board.SearchAlphaBeta {
		t.Errorf("SearchMode = %d, want SearchAlphaBeta", pos.SearchMode())
	}
}

func TestConfigureNegativeDepthSetsMaxTime(t *testing.T) {
	pos := board.New()
	Configure(pos, false, "d=-500", 1)
	if pos.MaxTime() != 500 {
		t.Errorf("MaxTime = %d, want 500", pos.MaxTime())
	}
}

func TestConfigureIgnoresUnknownKeys(t *testing.T) {
	pos := board.New()
	Configure(pos, false, "x=weird d=3", 1)
	if pos.MaxDepth() != 3 {
		t.Errorf("MaxDepth = %d, want 3", pos.MaxDepth())
	}
}

func TestConfigureFallsBackToDepthArgument(t *testing.T) {
	pos := board.New()
	Configure(pos, false, "e=mat", 7)
	if pos.MaxDepth() != 7 {
		t.Errorf("MaxDepth = %d, want fallback 7", pos.MaxDepth())
	}
}
