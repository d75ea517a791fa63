package board

import "testing"

func perft(p *Position, depth int) int {
	if depth == 0 {
		return 1
	}
	moves := p.CreateMoves(p.FRC(), true, false)
	if depth == 1 {
		return len(moves)
	}
	nodes := 0
	for _, m := range moves {
		p.MoveRaw(m)
		nodes += perft(p, depth-1)
		p.Undo()
	}
	return nodes
}

func TestPerftStartPosition(t *testing.T) {
	cases := []struct {
		depth int
		want  int
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
	}
	for _, c := range cases {
		p := New()
		if got := perft(p, c.depth); got != c.want {
			t.Errorf("perft(%d) = %d, want %d", c.depth, got, c.want)
		}
	}
}

func TestPerftKiwipete(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	cases := []struct {
		depth int
		want  int
	}{
		{1, 48},
		{2, 2039},
	}
	for _, c := range cases {
		p := New()
		p.Load(fen)
		if got := perft(p, c.depth); got != c.want {
			t.Errorf("perft(%d) = %d, want %d", c.depth, got, c.want)
		}
	}
}
