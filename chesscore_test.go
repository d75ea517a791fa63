package chesscore

import "testing"

func TestNewAndFen(t *testing.T) {
	e := New()
	if got := e.Fen(); got != DefaultFEN {
		t.Errorf("Fen() = %q, want default starting position", got)
	}
}

func TestNewDefaultParams(t *testing.T) {
	e := New()
	evalMode, searchMode, maxDepth, maxNodes, maxTime := e.Params()
	if evalMode != EvalMat {
		t.Errorf("evalMode = %d, want EvalMat", evalMode)
	}
	if searchMode != SearchRandom {
		t.Errorf("searchMode = %d, want SearchRandom", searchMode)
	}
	if maxDepth != 4 {
		t.Errorf("maxDepth = %d, want 4", maxDepth)
	}
	if maxNodes != 1000000000 {
		t.Errorf("maxNodes = %d, want 1e9", maxNodes)
	}
	if maxTime != 0 {
		t.Errorf("maxTime = %d, want 0", maxTime)
	}
}

func TestMoveSanSequence(t *testing.T) {
	e := New()
	results := e.MultiSan("e4 e5 Nf3 Nc6 Bb5", false)
	if len(results) != 5 {
		t.Fatalf("MultiSan played %d moves, want 5", len(results))
	}
	if results[4].SAN != "Bb5" {
		t.Errorf("last move SAN = %q, want Bb5", results[4].SAN)
	}
	if e.Turn() != BLACK {
		t.Errorf("turn after 5 half-moves should be black")
	}
}

func TestMoveUciSequence(t *testing.T) {
	e := New()
	results := e.MultiUci("e2e4 e7e5 g1f3")
	if len(results) != 3 {
		t.Fatalf("MultiUci played %d moves, want 3", len(results))
	}
	if e.Ucify(results[2].Move) != "g1f3" {
		t.Errorf("Ucify = %q, want g1f3", e.Ucify(results[2].Move))
	}
}

func TestMoveObjectAndUndo(t *testing.T) {
	e := New()
	before := e.Fen()
	m := e.MoveObject(AnToSquare("e2"), AnToSquare("e4"), 0, false)
	if m.IsNull() {
		t.Fatal("MoveObject failed to resolve e2-e4")
	}
	if e.Fen() == before {
		t.Fatal("position did not change after MoveObject")
	}
	e.Undo()
	if e.Fen() != before {
		t.Errorf("Undo did not restore the starting position")
	}
}

func TestConfigureAndSearch(t *testing.T) {
	e := New()
	e.Load("rnbqkbnr/pppp1ppp/8/4p2Q/4P3/8/PPPP1PPP/RNB1KBNR w KQkq - 2 3")
	e.Configure(false, "d=3 e=mob s=ab", 1)

	best, score := e.Search("")
	if best.IsNull() {
		t.Fatal("Search returned no move")
	}
	if e.Ucify(best) != "h5f7" {
		t.Errorf("Search picked %s, want h5f7 (mate in one)", e.Ucify(best))
	}
	if score <= 0 {
		t.Errorf("mate score should be strongly positive, got %d", score)
	}
	if e.Nodes() == 0 {
		t.Errorf("Nodes() should report work done")
	}
}

func TestFen960Load(t *testing.T) {
	fen := Fen960(518)
	e := New()
	applied := e.Load(fen)
	if applied == "" {
		t.Fatal("Load(Fen960(518)) failed")
	}
}

func TestCleanSanAndDecorate(t *testing.T) {
	if got := CleanSan("Qh4#"); got != "Qh4" {
		t.Errorf("CleanSan(Qh4#) = %q, want Qh4", got)
	}

	e := New()
	e.Load("rnbqkbnr/pppp1ppp/8/4p3/6P1/5P2/PPPPP2P/RNBQKBNR b KQkq - 0 2")
	m := e.MoveSan("Qh4", true, false)
	if m.IsNull() || m.SAN != "Qh4#" {
		t.Errorf("decorated MoveSan = %+v, want SAN Qh4#", m)
	}
}
