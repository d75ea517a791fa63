package search

import (
	"testing"

	"github.com/aldekein/chesscore/internal/board"
)

func TestSearchFindsMateInOne(t *testing.T) {
	pos := board.New()
	// White to move: Qh5-f7 is mate against the undeveloped black king.
	pos.Load("rnbqkbnr/pppp1ppp/8/4p2Q/4P3/8/PPPP1PPP/RNB1KBNR w KQkq - 2 3")
	pos.SetConfig(board.EvalMob, board.SearchAlphaBeta, 3, 0, 0)

	best, score := NewSearcher(pos).Search("")
	if best.IsNull() {
		t.Fatal("search returned no move")
	}
	if board.MoveUCI(pos, best) != "h5f7" {
		t.Errorf("search picked %s, want h5f7", board.MoveUCI(pos, best))
	}
	if score < decisiveAt {
		t.Errorf("mate-in-one score %d should be decisive (> %d)", score, decisiveAt)
	}
}

func TestSearchMaskRestrictsRoot(t *testing.T) {
	pos := board.New()
	pos.Load("rnbqkbnr/pppp1ppp/8/4p2Q/4P3/8/PPPP1PPP/RNB1KBNR w KQkq - 2 3")
	pos.SetConfig(board.EvalMob, board.SearchAlphaBeta, 2, 0, 0)

	best, _ := NewSearcher(pos).Search("h5g4 h5h6")
	if best.IsNull() {
		t.Fatal("search returned no move")
	}
	if uci := board.MoveUCI(pos, best); uci != "h5g4" && uci != "h5h6" {
		t.Errorf("search picked %s, want one of the masked moves", uci)
	}
}

func TestSearchRespectsNodeBudget(t *testing.T) {
	pos := board.New()
	pos.SetConfig(board.EvalMob, board.SearchAlphaBeta, 6, 500, 0)

	s := NewSearcher(pos)
	best, _ := s.Search("")
	if best.IsNull() {
		t.Fatal("search returned no move")
	}
	// A full depth-6 search from the opening would explore orders of
	// magnitude more than the 500-node budget; confirm the budget
	// actually bites rather than pinning an exact node count.
	if pos.Nodes() > 5000 {
		t.Errorf("search explored %d nodes, expected the 500-node budget to keep this far smaller", pos.Nodes())
	}
}
