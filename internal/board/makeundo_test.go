package board

import "testing"

func TestEnPassantCapture(t *testing.T) {
	p := New()
	for _, uci := range []string{"e2e4", "a7a6", "e4e5", "d7d5"} {
		m := MoveUciToMove(p, uci, false)
		if m.IsNull() {
			t.Fatalf("%s did not resolve to a legal move", uci)
		}
		p.MoveRaw(m)
	}
	if p.epSquare != anToSquare("d6") {
		t.Fatalf("ep square = %v, want d6", p.epSquare)
	}
	m := MoveUciToMove(p, "e5d6", false)
	if m.IsNull() || !m.Is(EP_CAPTURE) {
		t.Fatalf("e5d6 should resolve as an en passant capture: %+v", m)
	}
	before := p.Material(BLACK)
	p.MoveRaw(m)
	if p.Get(anToSquare("d5")) != 0 {
		t.Errorf("captured pawn still on d5 after en passant")
	}
	if p.Material(BLACK) != before-PIECE_SCORES[MakePiece(PAWN, BLACK)] {
		t.Errorf("black material not reduced by en passant capture")
	}
	p.Undo()
	if p.Get(anToSquare("d5")) == 0 {
		t.Errorf("undo did not restore the captured pawn on d5")
	}
}

func TestPromotion(t *testing.T) {
	p := New()
	p.Load("8/P7/8/8/8/8/8/k6K w - - 0 1")
	before := p.Material(WHITE)
	m := MoveUciToMove(p, "a7a8q", false)
	if m.IsNull() || m.Promote != QUEEN {
		t.Fatalf("a7a8q did not resolve to a queen promotion: %+v", m)
	}
	san := MoveToSan(p, m, false)
	if san != "a8=Q" {
		t.Errorf("promotion SAN = %q, want a8=Q", san)
	}
	p.MoveRaw(m)
	if PieceType(p.Get(anToSquare("a8"))) != QUEEN {
		t.Errorf("a8 does not hold a queen after promotion")
	}
	if want := before + PROMOTE_SCORES[QUEEN]; p.Material(WHITE) != want {
		t.Errorf("material after promotion = %d, want %d", p.Material(WHITE), want)
	}
	p.Undo()
	if PieceType(p.Get(anToSquare("a7"))) != PAWN {
		t.Errorf("undo did not restore the pawn on a7")
	}
	if p.Material(WHITE) != before {
		t.Errorf("undo did not restore material")
	}
}

func TestChess960Castling(t *testing.T) {
	p := New()
	p.Load("r3k2r/8/8/8/8/8/8/1R2K2R w Kkq - 0 1")
	p.SetFRC(true)
	// King on e1, rooks on b1 and h1, but the castling field grants
	// white only the kingside right; restrict to that white kingside
	// castle.
	var castle Move
	for _, m := range p.CreateMoves(true, true, false) {
		if m.Is(KSIDE_CASTLE) {
			castle = m
		}
	}
	if castle.IsNull() {
		t.Fatal("no kingside castle generated")
	}
	p.MoveRaw(castle)
	if p.King(WHITE) != anToSquare("g1") {
		t.Errorf("king did not land on g1 after kingside castle, got %v", p.King(WHITE))
	}
	if PieceType(p.Get(anToSquare("f1"))) != ROOK {
		t.Errorf("rook did not land on f1 after kingside castle")
	}
	p.Undo()
	if p.King(WHITE) != anToSquare("e1") {
		t.Errorf("undo did not restore king to e1")
	}
}

func TestCheckmateAndStalemate(t *testing.T) {
	p := New()
	p.Load("rnbqkbnr/pppp1ppp/8/4p3/6P1/5P2/PPPPP2P/RNBQKBNR b KQkq - 0 2")
	m := MoveObject(p, anToSquare("d8"), anToSquare("h4"), 0, false)
	p.MoveRaw(m)
	if !p.IsCheckmate() {
		t.Errorf("fool's mate position should be checkmate")
	}

	stalemate := New()
	stalemate.Load("k7/8/1Q6/8/8/8/8/7K b - - 0 1")
	if !stalemate.IsStalemate() {
		t.Errorf("expected stalemate position to report IsStalemate")
	}
}
