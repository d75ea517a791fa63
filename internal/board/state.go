package board

// Castling rook slots, indexed [white-KS, white-QS, black-KS, black-QS].
const (
	WhiteKS = 0
	WhiteQS = 1
	BlackKS = 2
	BlackQS = 3
)

// Position holds the full mutable state of a game in progress: the
// board array, side to move, castling rights (stored as rook squares so
// orthodox and Chess960 share one code path), en-passant target,
// fifty-move counter, full-move counter, cached king squares, running
// material totals, last-computed mobility counts, and the ply-indexed
// undo stack.
type Position struct {
	board      [128]int
	turn       int
	kings      [2]Square
	castling   [4]Square
	epSquare   Square
	halfMoves  int
	moveNumber int
	materials  [2]int
	mobilities [16]int
	ply        int
	frc        bool
	stack      []stateEntry

	// Search/eval configuration, consulted by CreateMoves when deciding
	// whether to order moves and by the search package via the
	// accessors below.
	evalMode   int
	searchMode int
	maxDepth   int
	maxNodes   int
	maxTime    int

	// Stats from the most recently completed Search call, exposed for
	// introspection.
	nodes    int
	avgDepth float64
	selDepth int
}

// Evaluation mode constants, selected via the e= Configure token.
const (
	EvalNull = 0
	EvalMat  = 1
	EvalMob  = 2
	EvalHCE  = 3
	EvalQui  = 7
	EvalNN   = 11
)

// Search mode constants, selected via the s= Configure token.
const (
	SearchRandom    = 0
	SearchMinimax   = 1
	SearchAlphaBeta = 2
)

// New returns a Position set to the standard starting array, configured
// with the same defaults the original constructor applies via
// configure(false, "", 4): material-only eval, random search mode, a
// max depth of 4, and a max_nodes ceiling of one billion.
func New() *Position {
	p := &Position{}
	p.SetConfig(EvalMat, SearchRandom, 4, 1000000000, 0)
	p.Reset()
	return p
}

// Reset restores the standard chess starting position.
func (p *Position) Reset() {
	p.Load(DefaultFEN)
}

// Clear empties the board and resets all derived state. Castling rights,
// king squares, and the ep-square become EMPTY; materials and mobilities
// zero out; the undo stack is released.
func (p *Position) Clear() {
	for i := range p.board {
		p.board[i] = 0
	}
	p.turn = WHITE
	p.kings = [2]Square{EMPTY, EMPTY}
	p.castling = [4]Square{EMPTY, EMPTY, EMPTY, EMPTY}
	p.epSquare = EMPTY
	p.halfMoves = 0
	p.moveNumber = 1
	p.materials = [2]int{0, 0}
	p.mobilities = [16]int{}
	p.ply = 0
	p.frc = false
	p.stack = p.stack[:0]
}

// Get returns the piece nibble sitting on sq, or 0 if sq is off-board or
// empty.
func (p *Position) Get(sq Square) int {
	if !onBoard(sq) {
		return 0
	}
	return p.board[sq]
}

// Put places a piece nibble on sq, updating material and the cached
// king square. Putting 0 clears the square without affecting material
// bookkeeping for whatever piece previously sat there; callers that
// need to replace a piece should compute the delta themselves.
func (p *Position) Put(piece int, sq Square) {
	if !onBoard(sq) {
		return
	}
	p.board[sq] = piece
	if piece == 0 {
		return
	}
	typ, color := PieceType(piece), PieceColor(piece)
	if typ == KING {
		p.kings[color] = sq
	}
	p.materials[color] += PIECE_SCORES[piece]
}

// Turn returns the side to move.
func (p *Position) Turn() int { return p.turn }

// Ply returns the current ply count.
func (p *Position) Ply() int { return p.ply }

// HalfMoves returns the fifty-move-rule half-move clock.
func (p *Position) HalfMoves() int { return p.halfMoves }

// MoveNumber returns the full-move counter.
func (p *Position) MoveNumber() int { return p.moveNumber }

// King returns the king square for color, or EMPTY if that color has no
// king on the board.
func (p *Position) King(color int) Square { return p.kings[color] }

// Castling returns a copy of the four castling rook slots.
func (p *Position) Castling() [4]Square { return p.castling }

// FRC reports whether the position was loaded/detected as Chess960.
func (p *Position) FRC() bool { return p.frc }

// SetFRC forces Chess960 castling/FEN semantics regardless of detection.
func (p *Position) SetFRC(v bool) { p.frc = v }

// Material returns the running material total for color.
func (p *Position) Material(color int) int { return p.materials[color] }

// Mobilities returns a copy of the last-computed per-nibble mobility
// counts, refreshed every time CreateMoves runs for that nibble's color.
func (p *Position) Mobilities() [16]int { return p.mobilities }

// EvalMode, SearchMode, MaxDepth, MaxNodes, and MaxTime return the
// engine configuration set by Configure.
func (p *Position) EvalMode() int   { return p.evalMode }
func (p *Position) SearchMode() int { return p.searchMode }
func (p *Position) MaxDepth() int   { return p.maxDepth }
func (p *Position) MaxNodes() int   { return p.maxNodes }
func (p *Position) MaxTime() int    { return p.maxTime }

// SetConfig applies the engine configuration. nodes and maxTime replace
// the current values, 0 included. A negative depth sets MaxTime instead
// of MaxDepth (when maxTime is 0), per the d= option's documented
// overload.
func (p *Position) SetConfig(evalMode, searchMode, depth, nodes, maxTime int) {
	p.evalMode = evalMode
	p.searchMode = searchMode
	p.maxNodes = nodes
	p.maxTime = maxTime
	if depth >= 0 {
		p.maxDepth = depth
	} else if maxTime == 0 {
		p.maxTime = -depth
	}
}

// Nodes, AvgDepth, and SelDepth report statistics from the most recent
// Search call.
func (p *Position) Nodes() int        { return p.nodes }
func (p *Position) AvgDepth() float64 { return p.avgDepth }
func (p *Position) SelDepth() int     { return p.selDepth }

// SetSearchStats is called by the search package after each Search to
// publish introspection data on the position.
func (p *Position) SetSearchStats(nodes int, avgDepth float64, selDepth int) {
	p.nodes = nodes
	p.avgDepth = avgDepth
	p.selDepth = selDepth
}

// ensureStack grows the undo stack so index idx is addressable, per the
// spec's "grown on demand to ply+2" rule; ply can start negative (FEN
// move_number 1 with white to move yields ply -1), so indices are
// offset by a fixed bias before touching the slice.
const stackBias = 4096

func (p *Position) ensureStack(idx int) {
	need := idx + stackBias + 2
	if need < 0 {
		need = 2
	}
	if len(p.stack) < need {
		grown := make([]stateEntry, need)
		copy(grown, p.stack)
		p.stack = grown
	}
}
