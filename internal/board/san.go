package board

import "strings"

// MoveToSan renders m in Standard Algebraic Notation, without the
// trailing +/# decoration (see Decorate).
func MoveToSan(p *Position, m Move, frc bool) string {
	if m.Is(KSIDE_CASTLE) {
		return "O-O"
	}
	if m.Is(QSIDE_CASTLE) {
		return "O-O-O"
	}

	var sb strings.Builder
	typ := PieceType(m.Piece)

	if typ != PAWN {
		sb.WriteByte(pieceChar(typ, 0))
		sb.WriteString(disambiguation(p, m, frc))
	}

	isCapture := m.Captured != 0 || m.Is(EP_CAPTURE)
	if isCapture {
		if typ == PAWN {
			sb.WriteByte('a' + byte(File(m.From)))
		}
		sb.WriteByte('x')
	}

	sb.WriteString(squareToAn(m.To, false))

	if m.Promote != 0 {
		sb.WriteByte('=')
		sb.WriteByte(pieceChar(m.Promote, 0))
	}

	return sb.String()
}

// disambiguation returns the minimal origin-square prefix needed to
// distinguish m from other legal moves of the same piece type landing
// on the same square.
func disambiguation(p *Position, m Move, frc bool) string {
	var sameFile, sameRank bool
	any := false
	for _, other := range p.CreateMoves(frc, true, false) {
		if other.From == m.From || other.To != m.To || PieceType(other.Piece) != PieceType(m.Piece) {
			continue
		}
		any = true
		if File(other.From) == File(m.From) {
			sameFile = true
		}
		if Rank(other.From) == Rank(m.From) {
			sameRank = true
		}
	}
	if !any {
		return ""
	}
	if !sameFile {
		return string(rune('a' + File(m.From)))
	}
	if !sameRank {
		return string(rune('8' - Rank(m.From)))
	}
	return squareToAn(m.From, false)
}

// Decorate appends a trailing + or # to san if playing m gives check or
// checkmate, respectively. It applies and immediately undoes m on p.
func Decorate(p *Position, m Move, san string) string {
	p.MoveRaw(m)
	suffix := ""
	if p.IsCheckmate() {
		suffix = "#"
	} else if p.Checked(p.turn) {
		suffix = "+"
	}
	p.Undo()
	return san + suffix
}

// CleanSan is the exported form of cleanSan.
func CleanSan(s string) string { return cleanSan(s) }

// cleanSan strips check/mate/annotation/promotion-equals decorations so
// two differently-decorated renderings of the same move compare equal.
func cleanSan(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '+', '#', '?', '!', '=':
			continue
		default:
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}

// SanToMove resolves a SAN string against the legal moves available in
// p. It first tries an exact match against each legal move's own
// cleaned SAN; if that fails and sloppy is set, it falls back to a
// lenient right-to-left scan. On total failure it returns the null-move
// sentinel (Move{} with Piece == 0).
func SanToMove(p *Position, text string, frc, sloppy bool) Move {
	cleaned := cleanSan(strings.TrimSpace(text))
	legal := p.CreateMoves(frc, true, false)
	for _, m := range legal {
		if cleanSan(MoveToSan(p, m, frc)) == cleaned {
			return m
		}
	}
	if !sloppy {
		return Move{}
	}
	return sloppyToMove(p, legal, cleaned)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func promoLetterType(c byte) (int, bool) {
	switch c {
	case 'n', 'N':
		return KNIGHT, true
	case 'b', 'B':
		return BISHOP, true
	case 'r', 'R':
		return ROOK, true
	case 'q', 'Q':
		return QUEEN, true
	}
	return 0, false
}

func pieceLetterType(c byte) (int, bool) {
	switch c {
	case 'N':
		return KNIGHT, true
	case 'B':
		return BISHOP, true
	case 'R':
		return ROOK, true
	case 'Q':
		return QUEEN, true
	case 'K':
		return KING, true
	}
	return 0, false
}

// sloppyToMove scans a cleaned SAN string from right to left:
// [piece][from-file][from-rank]['x'][to-file][to-rank][promote]. Files
// beyond 'h' are treated as a parse failure even though the scan itself
// tolerates letters up to 'j', per the documented open question about
// wider boards.
func sloppyToMove(p *Position, legal []Move, s string) Move {
	idx := len(s)
	if idx == 0 {
		return Move{}
	}

	promote := 0
	if idx >= 3 && isDigit(s[idx-2]) {
		if pt, ok := promoLetterType(s[idx-1]); ok {
			promote = pt
			idx--
		}
	}

	if idx < 2 {
		return Move{}
	}
	to := anToSquare(s[idx-2 : idx])
	if to == EMPTY {
		return Move{}
	}
	idx -= 2

	if idx > 0 && s[idx-1] == 'x' {
		idx--
	}

	fromRank := -1
	if idx > 0 && isDigit(s[idx-1]) {
		fromRank = 7 - int(s[idx-1]-'1')
		idx--
	}

	fromFile := -1
	if idx > 0 && s[idx-1] >= 'a' && s[idx-1] <= 'j' {
		if s[idx-1] > 'h' {
			return Move{}
		}
		fromFile = int(s[idx-1] - 'a')
		idx--
	}

	pieceType := PAWN
	if idx > 0 {
		if pt, ok := pieceLetterType(s[idx-1]); ok {
			pieceType = pt
			idx--
		}
	}

	if idx != 0 {
		return Move{}
	}

	for _, m := range legal {
		if m.To != to || PieceType(m.Piece) != pieceType {
			continue
		}
		if fromFile >= 0 && File(m.From) != fromFile {
			continue
		}
		if fromRank >= 0 && Rank(m.From) != fromRank {
			continue
		}
		if m.Promote != promote {
			continue
		}
		return m
	}
	return Move{}
}
