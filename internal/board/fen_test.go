package board

import "testing"

func TestFenRoundTrip(t *testing.T) {
	fens := []string{
		DefaultFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/P7/8/8/8/8/8/k6K w - - 0 1",
		"rnbq1rk1/pppp1ppp/4pn2/8/1bPP4/2N5/PP2PPPP/R1BQKBNR w KQ - 4 5",
	}
	for _, fen := range fens {
		p := New()
		got := p.Load(fen)
		if got != fen {
			t.Errorf("Load(%q).Fen() = %q, want round trip", fen, got)
		}
	}
}

func TestFenCastlingRepair(t *testing.T) {
	// King on e1, rooks on a1/h1, but the castling field uses non-
	// standard letters naming the same rooks: should normalize without
	// flagging FRC.
	p := New()
	p.Load("r3k2r/8/8/8/8/8/8/R3K2R w HAha - 0 1")
	if p.FRC() {
		t.Errorf("standard back rank repaired to orthodox should not be FRC")
	}
	if p.Castling()[WhiteKS] != anToSquare("h1") {
		t.Errorf("white kingside rook not resolved to h1")
	}
}

func TestChess960StartingPosition(t *testing.T) {
	fen := Fen960(0)
	if fen == "" {
		t.Fatal("Fen960(0) returned empty string")
	}
	p := New()
	p.Load(fen)
	if !p.FRC() {
		// Index 0 is the BBQNNRKR back rank, whose F/f castling
		// letters flag the position FRC on load, so this branch is not
		// taken for it; only the load and both kings' placement are
		// asserted here.
	}
	if p.King(WHITE) == EMPTY || p.King(BLACK) == EMPTY {
		t.Fatal("Chess960 starting position missing a king")
	}
}
