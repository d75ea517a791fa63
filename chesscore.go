// Package chesscore is the public facade over the board, config, and
// search packages: move generation, make/undo, FEN/SAN/UCI notation,
// Chess960 setup, and a small negamax engine, all driven through a
// single Engine value.
package chesscore

import (
	"github.com/aldekein/chesscore/internal/board"
	"github.com/aldekein/chesscore/internal/book"
	"github.com/aldekein/chesscore/internal/config"
	"github.com/aldekein/chesscore/internal/search"
)

// Version identifies this build for UCI "id" replies and diagnostics.
const Version = "1.0.0"

// Re-exported move flags, piece types, colors, and eval/search modes so
// callers never need to import the internal packages directly.
const (
	NORMAL       = board.NORMAL
	CAPTURE      = board.CAPTURE
	BIG_PAWN     = board.BIG_PAWN
	EP_CAPTURE   = board.EP_CAPTURE
	PROMOTION    = board.PROMOTION
	KSIDE_CASTLE = board.KSIDE_CASTLE
	QSIDE_CASTLE = board.QSIDE_CASTLE
	CASTLE_MASK  = board.CASTLE_MASK

	PAWN   = board.PAWN
	KNIGHT = board.KNIGHT
	BISHOP = board.BISHOP
	ROOK   = board.ROOK
	QUEEN  = board.QUEEN
	KING   = board.KING

	WHITE = board.WHITE
	BLACK = board.BLACK

	EvalNull = board.EvalNull
	EvalMat  = board.EvalMat
	EvalMob  = board.EvalMob
	EvalHCE  = board.EvalHCE
	EvalQui  = board.EvalQui
	EvalNN   = board.EvalNN

	SearchRandom    = board.SearchRandom
	SearchMinimax   = board.SearchMinimax
	SearchAlphaBeta = board.SearchAlphaBeta

	PieceNames = board.PieceNames

	DefaultFEN = board.DefaultFEN
)

// Move is the public move record: re-exported verbatim so callers can
// hold onto values returned by Moves/MoveSan/MoveUci/MoveObject.
type Move = board.Move

// MoveText extends Move with the FEN and ply produced by MultiSan and
// MultiUci; both leave Score at 0.
type MoveText = board.MoveText

// Engine wraps a single board.Position and is the entry point for every
// exposed operation. It is not safe for concurrent use; distinct Engine
// values are fully independent.
type Engine struct {
	pos  *board.Position
	book *book.Book
}

// New returns an Engine set to the standard starting position.
func New() *Engine {
	return &Engine{pos: board.New()}
}

// OpenBook attaches a BadgerDB-backed result cache at dir to the
// engine: subsequent Search calls serve from it when a cached entry
// was searched to at least the engine's configured depth, and store
// newly computed results back into it. Call CloseBook when done.
func (e *Engine) OpenBook(dir string) error {
	b, err := book.Open(dir)
	if err != nil {
		return err
	}
	e.book = b
	return nil
}

// CloseBook releases a book opened with OpenBook, if any.
func (e *Engine) CloseBook() error {
	if e.book == nil {
		return nil
	}
	err := e.book.Close()
	e.book = nil
	return err
}

// Configure applies frc and a space-separated "k=v" options string
// (d=/e=/n=/s=/t=) to the engine, falling back to depth when the
// options string carries no d= token.
func (e *Engine) Configure(frc bool, options string, depth int) {
	config.Configure(e.pos, frc, options, depth)
}

// Reset restores the standard chess starting position.
func (e *Engine) Reset() { e.pos.Reset() }

// Clear empties the board and all derived state.
func (e *Engine) Clear() { e.pos.Clear() }

// Load parses fen, replacing the engine's entire state, and returns the
// (possibly repaired) FEN actually applied.
func (e *Engine) Load(fen string) string { return e.pos.Load(fen) }

// Fen renders the current position as a FEN string.
func (e *Engine) Fen() string { return e.pos.Fen() }

// CurrentFen is an alias for Fen, matching the exposed-operations list.
func (e *Engine) CurrentFen() string { return e.pos.Fen() }

// Fen960 returns the starting FEN for Chess960 index 0..959.
func Fen960(index int) string { return board.Fen960(index) }

// Turn returns the side to move.
func (e *Engine) Turn() int { return e.pos.Turn() }

// FRC reports whether the engine is in Chess960 mode.
func (e *Engine) FRC() bool { return e.pos.FRC() }

// Board returns the piece nibble on every square 0..127 (0x88 layout);
// off-board entries are always 0.
func (e *Engine) Board() [128]int {
	var out [128]int
	for sq := 0; sq < 128; sq++ {
		out[sq] = e.pos.Get(board.Square(sq))
	}
	return out
}

// Put places a piece nibble (see Piece/PieceNames) on sq.
func (e *Engine) Put(piece int, sq int) { e.pos.Put(piece, board.Square(sq)) }

// Piece parses a FEN piece letter into its nibble encoding, returning
// (0, false) if c doesn't name a piece.
func Piece(c byte) (int, bool) { return board.PieceFromChar(c) }

// Castling returns the four castling rook squares
// [white-KS, white-QS, black-KS, black-QS], EMPTY (-1) where absent.
func (e *Engine) Castling() [4]int {
	c := e.pos.Castling()
	return [4]int{int(c[0]), int(c[1]), int(c[2]), int(c[3])}
}

// Material returns the running material total for color.
func (e *Engine) Material(color int) int { return e.pos.Material(color) }

// Mobilities returns the last-computed per-nibble mobility counts.
func (e *Engine) Mobilities() [16]int { return e.pos.Mobilities() }

// Attacked reports whether any piece of color attacks target.
func (e *Engine) Attacked(color int, target int) bool {
	return e.pos.Attacked(color, board.Square(target))
}

// Checked reports whether color's king is currently attacked.
func (e *Engine) Checked(color int) bool { return e.pos.Checked(color) }

// Moves returns the moves available to the side to move.
func (e *Engine) Moves(legal, onlyCapture bool) []Move {
	return e.pos.CreateMoves(e.pos.FRC(), legal, onlyCapture)
}

// MoveRaw applies m without legality checking.
func (e *Engine) MoveRaw(m Move) { e.pos.MoveRaw(m) }

// Undo reverses the most recent MoveRaw.
func (e *Engine) Undo() { e.pos.Undo() }

// MoveObject resolves a (from, to, promote) triple against the legal
// moves available, applying it and returning the resolved move (the
// null move on failure). decorate appends +/# to the move's SAN field.
func (e *Engine) MoveObject(from, to, promote int, decorate bool) Move {
	m := board.MoveObject(e.pos, board.Square(from), board.Square(to), promote, e.pos.FRC())
	if m.IsNull() {
		return m
	}
	san := board.MoveToSan(e.pos, m, e.pos.FRC())
	if decorate {
		san = board.Decorate(e.pos, m, san)
	}
	m.SAN = san
	e.pos.MoveRaw(m)
	return m
}

// MoveSan resolves text against the legal moves available, applies it,
// and returns the resolved move (the null move on failure).
func (e *Engine) MoveSan(text string, decorate, sloppy bool) Move {
	m := board.SanToMove(e.pos, text, e.pos.FRC(), sloppy)
	if m.IsNull() {
		return m
	}
	san := board.MoveToSan(e.pos, m, e.pos.FRC())
	if decorate {
		san = board.Decorate(e.pos, m, san)
	}
	m.SAN = san
	e.pos.MoveRaw(m)
	return m
}

// MoveUci resolves a UCI move string against the legal moves available,
// applies it, and returns the resolved move (the null move on failure).
func (e *Engine) MoveUci(text string, decorate bool) Move {
	m := board.MoveUciToMove(e.pos, text, e.pos.FRC())
	if m.IsNull() {
		return m
	}
	san := board.MoveToSan(e.pos, m, e.pos.FRC())
	if decorate {
		san = board.Decorate(e.pos, m, san)
	}
	m.SAN = san
	e.pos.MoveRaw(m)
	return m
}

// MoveToSan renders m in Standard Algebraic Notation.
func (e *Engine) MoveToSan(m Move) string { return board.MoveToSan(e.pos, m, e.pos.FRC()) }

// Ucify renders m as a UCI move string.
func (e *Engine) Ucify(m Move) string { return board.MoveUCI(e.pos, m) }

// SanToMove resolves text against the legal moves available without
// applying it.
func (e *Engine) SanToMove(text string, sloppy bool) Move {
	return board.SanToMove(e.pos, text, e.pos.FRC(), sloppy)
}

// CleanSan strips check/mate/annotation/promotion-equals decorations
// from a SAN string.
func CleanSan(san string) string { return board.CleanSan(san) }

// Decorate appends a trailing +/# to san if playing m gives check or
// checkmate.
func (e *Engine) Decorate(m Move, san string) string { return board.Decorate(e.pos, m, san) }

// MultiSan plays a whitespace-separated sequence of SAN moves in order,
// stopping at the first one that fails to resolve. It returns one
// MoveText per move successfully played.
func (e *Engine) MultiSan(text string, sloppy bool) []MoveText {
	return e.multi(splitMoves(text), func(tok string) Move {
		return board.SanToMove(e.pos, tok, e.pos.FRC(), sloppy)
	})
}

// MultiUci plays a whitespace-separated sequence of UCI moves in order,
// stopping at the first one that fails to resolve. It returns one
// MoveText per move successfully played.
func (e *Engine) MultiUci(text string) []MoveText {
	return e.multi(splitMoves(text), func(tok string) Move {
		return board.MoveUciToMove(e.pos, tok, e.pos.FRC())
	})
}

func (e *Engine) multi(tokens []string, resolve func(string) Move) []MoveText {
	out := make([]MoveText, 0, len(tokens))
	for _, tok := range tokens {
		m := resolve(tok)
		if m.IsNull() {
			break
		}
		m.SAN = board.MoveToSan(e.pos, m, e.pos.FRC())
		e.pos.MoveRaw(m)
		out = append(out, MoveText{Move: m, Fen: e.pos.Fen(), Ply: e.pos.Ply()})
	}
	return out
}

func splitMoves(text string) []string {
	var out []string
	start := -1
	for i := 0; i <= len(text); i++ {
		if i < len(text) && text[i] != ' ' && text[i] != '\t' && text[i] != '\n' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			out = append(out, text[start:i])
			start = -1
		}
	}
	return out
}

// Order exposes the move-ordering comparator's effect by returning
// moves sorted the way alpha-beta search would order them.
func (e *Engine) Order(moves []Move) []Move {
	out := make([]Move, len(moves))
	copy(out, moves)
	board.StableSortMoves(out)
	return out
}

// Search runs the configured search from the current position. mask,
// when non-empty, restricts the root to moves whose UCI string is a
// substring of mask (e.g. "e2e4 g1f3" limits the root to those two).
// With a book attached via OpenBook, an unmasked search first checks
// the book for a result searched to at least the current depth, and
// stores its own result back into the book when it has to compute one.
func (e *Engine) Search(mask string) (Move, int) {
	fen := e.pos.Fen()
	depth := e.pos.MaxDepth()

	if e.book != nil && mask == "" {
		if entry, ok := e.book.Lookup(fen, depth); ok {
			if m := board.MoveUciToMove(e.pos, entry.BestUCI, e.pos.FRC()); !m.IsNull() {
				return m, entry.Score
			}
		}
	}

	best, score := search.NewSearcher(e.pos).Search(mask)

	if e.book != nil && mask == "" && !best.IsNull() {
		_ = e.book.Store(fen, book.Entry{
			BestUCI: board.MoveUCI(e.pos, best),
			Score:   score,
			Depth:   depth,
			Nodes:   e.pos.Nodes(),
		})
	}

	return best, score
}

// Nodes, AvgDepth, and SelDepth report statistics from the most recent
// Search call.
func (e *Engine) Nodes() int        { return e.pos.Nodes() }
func (e *Engine) AvgDepth() float64 { return e.pos.AvgDepth() }
func (e *Engine) SelDepth() int     { return e.pos.SelDepth() }

// Params returns the engine's current configuration as
// (evalMode, searchMode, maxDepth, maxNodes, maxTime).
func (e *Engine) Params() (evalMode, searchMode, maxDepth, maxNodes, maxTime int) {
	return e.pos.EvalMode(), e.pos.SearchMode(), e.pos.MaxDepth(), e.pos.MaxNodes(), e.pos.MaxTime()
}

// Print returns a human-readable rendering of the board.
func (e *Engine) Print() string { return e.pos.String() }

// SquareToAn renders sq in algebraic notation ("e4").
func SquareToAn(sq int, check bool) string { return board.SquareToAn(board.Square(sq), check) }

// AnToSquare parses algebraic notation ("e4") into a 0x88 square index,
// or -1 if the string is not a well-formed square.
func AnToSquare(an string) int { return int(board.AnToSquare(an)) }
