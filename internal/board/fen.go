package board

import "strconv"

// DefaultFEN is the standard chess starting position.
const DefaultFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Load parses fen into p, replacing its entire state. It returns the
// (possibly repaired) FEN string that was actually applied, or "" if
// fen is empty. Repair only runs for an initial position (white to
// move, move_number 1): a castling letter that doesn't name a rook of
// the matching color is then corrected by scanning the back rank from
// the edge toward the king for the outermost rook on that side, and the
// position is
// flagged FRC. A mid-game FEN with a stale castling letter is loaded
// as-is.
func (p *Position) Load(fen string) string {
	if fen == "" {
		return ""
	}
	p.Clear()

	step := 0
	file, rank := 0, 0
	fields := [6]string{}

	for i := 0; i < len(fen); i++ {
		c := fen[i]
		if c == ' ' {
			step++
			continue
		}
		switch step {
		case 0:
			switch {
			case c == '/':
				rank++
				file = 0
			case c >= '1' && c <= '9':
				file += int(c - '0')
			default:
				if piece, ok := pieceFromChar(c); ok {
					sq := Square(rank<<4 | file)
					p.Put(piece, sq)
					file++
				}
			}
		default:
			fields[step-1] += string(c)
		}
	}

	if fields[0] == "b" {
		p.turn = BLACK
	} else {
		p.turn = WHITE
	}

	p.loadCastling(fields[1])

	if fields[2] != "" && fields[2] != "-" {
		p.epSquare = anToSquare(fields[2])
	}

	if fields[3] != "" {
		if n, err := strconv.Atoi(fields[3]); err == nil {
			p.halfMoves = n
		}
	}
	p.moveNumber = 1
	if fields[4] != "" {
		if n, err := strconv.Atoi(fields[4]); err == nil {
			p.moveNumber = n
		}
	}

	p.ply = p.moveNumber*2 - 3 + p.turn

	if p.turn == WHITE && p.moveNumber == 1 {
		p.repairCastling()
	}

	return p.Fen()
}

// loadCastling parses the castling field into the four rook slots,
// mapping K/Q to the h-/a-file rook of the matching color and any other
// letter to its own file.
func (p *Position) loadCastling(field string) {
	if field == "" || field == "-" {
		return
	}
	for i := 0; i < len(field); i++ {
		c := field[i]
		var color, fileIdx int
		switch {
		case c == 'K':
			color, fileIdx = WHITE, 7
		case c == 'Q':
			color, fileIdx = WHITE, 0
		case c == 'k':
			color, fileIdx = BLACK, 7
		case c == 'q':
			color, fileIdx = BLACK, 0
		case c >= 'A' && c <= 'H':
			color, fileIdx = WHITE, int(c-'A')
		case c >= 'a' && c <= 'h':
			color, fileIdx = BLACK, int(c-'a')
		default:
			continue
		}
		if fileIdx != 0 && fileIdx != 7 {
			p.frc = true
		}
		backRank := 7
		if color == BLACK {
			backRank = 0
		}
		rook := Square(backRank<<4 | fileIdx)
		king := p.kings[color]
		q := 0
		if king != EMPTY && rook < king {
			q = 1
		}
		p.castling[color*2+q] = rook
	}
}

// repairCastling validates every castling slot against the board and,
// for any slot whose square isn't a rook of the matching color,
// rescans the back rank from the edge toward the king to find the
// outermost rook on that side. A repair that lands on a non-a/h file marks the
// position as Chess960. Called only for a freshly loaded initial
// position; Load leaves a mid-game position's castling rights alone.
func (p *Position) repairCastling() {
	for i := 0; i < 4; i++ {
		if p.castling[i] == EMPTY {
			continue
		}
		color := i / 2
		piece := p.board[p.castling[i]]
		if PieceType(piece) == ROOK && PieceColor(piece) == color {
			continue
		}
		q := i % 2
		p.castling[i] = p.findOutermostRook(color, q)
		if p.castling[i] != EMPTY && File(p.castling[i]) != 0 && File(p.castling[i]) != 7 {
			p.frc = true
		}
	}
}

// findOutermostRook scans the back rank for color, starting from the
// h-file (q==0, kingside) or a-file (q==1, queenside) inward toward the
// king, and returns the first rook square found beyond the king on that
// side, or EMPTY.
func (p *Position) findOutermostRook(color, q int) Square {
	king := p.kings[color]
	if king == EMPTY {
		return EMPTY
	}
	backRank := 7
	if color == BLACK {
		backRank = 0
	}
	start, end, step := 7, File(king), -1
	if q == 1 {
		start, end, step = 0, File(king), 1
	}
	for f := start; (step > 0 && f <= end) || (step < 0 && f >= end); f += step {
		sq := Square(backRank<<4 | f)
		piece := p.board[sq]
		if PieceType(piece) == ROOK && PieceColor(piece) == color {
			return sq
		}
	}
	return EMPTY
}

// Fen renders the current position as a FEN string. Castling is written
// using K/Q/k/q flags unless the position is flagged FRC, in which case
// it uses the rook's own file letter (uppercase for white, lowercase
// for black).
func (p *Position) Fen() string {
	s := make([]byte, 0, 80)

	for rank := 0; rank < 8; rank++ {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := Square(rank<<4 | file)
			piece := p.board[sq]
			if piece == 0 {
				empty++
				continue
			}
			if empty > 0 {
				s = strconv.AppendInt(s, int64(empty), 10)
				empty = 0
			}
			s = append(s, PieceNames[piece])
		}
		if empty > 0 {
			s = strconv.AppendInt(s, int64(empty), 10)
		}
		if rank < 7 {
			s = append(s, '/')
		}
	}

	s = append(s, ' ')
	if p.turn == WHITE {
		s = append(s, 'w')
	} else {
		s = append(s, 'b')
	}

	s = append(s, ' ')
	s = append(s, []byte(p.castlingField())...)

	s = append(s, ' ')
	s = append(s, []byte(squareToAn(p.epSquare, false))...)

	s = append(s, ' ')
	s = strconv.AppendInt(s, int64(p.halfMoves), 10)
	s = append(s, ' ')
	s = strconv.AppendInt(s, int64(p.moveNumber), 10)

	return string(s)
}

func (p *Position) castlingField() string {
	letters := [4]byte{}
	any := false
	order := [4]struct {
		idx      int
		standard byte
		color    int
	}{
		{WhiteKS, 'K', WHITE}, {WhiteQS, 'Q', WHITE}, {BlackKS, 'k', BLACK}, {BlackQS, 'q', BLACK},
	}
	out := make([]byte, 0, 4)
	for n, o := range order {
		if p.castling[o.idx] == EMPTY {
			continue
		}
		any = true
		if p.frc {
			letter := byte('A' + File(p.castling[o.idx]))
			if o.color == BLACK {
				letter = byte('a' + File(p.castling[o.idx]))
			}
			letters[n] = letter
		} else {
			letters[n] = o.standard
		}
	}
	if !any {
		return "-"
	}
	for _, l := range letters {
		if l != 0 {
			out = append(out, l)
		}
	}
	return string(out)
}
