package board

// Step offsets for non-sliding pieces and slide directions for sliders,
// all expressed as 0x88 square deltas.
var (
	knightOffsets = [8]int{-18, -33, -31, -14, 14, 31, 33, 18}
	kingOffsets   = [8]int{-17, -16, -15, -1, 1, 15, 16, 17}
	bishopDirs    = [4]int{-17, -15, 15, 17}
	rookDirs      = [4]int{-16, -1, 1, 16}
	queenDirs     = [8]int{-17, -15, 15, 17, -16, -1, 1, 16}

	// pawnOffsets[color] = {single push, double push, capture, capture}.
	pawnOffsets = [2][4]int{
		{-16, -32, -17, -15}, // white
		{16, 32, 17, 15},     // black
	}
)

// CreateMoves returns the moves available to the side to move. With
// legal set it filters out moves that leave the mover's own king in
// check; with onlyCapture it skips quiet pawn pushes and castling.
// Castling is only ever generated when onlyCapture is false. frc
// enables the Chess960 castling-destination convention.
func (p *Position) CreateMoves(frc, legal, onlyCapture bool) []Move {
	us := p.turn

	for t := PAWN; t <= KING; t++ {
		p.mobilities[MakePiece(t, us)] = 0
	}

	moves := make([]Move, 0, 48)

	for sq := 0; sq <= boardMax; sq++ {
		if sq&0x88 != 0 {
			sq += 7
			continue
		}
		piece := p.board[sq]
		if piece == 0 || PieceColor(piece) != us {
			continue
		}
		from := Square(sq)
		typ := PieceType(piece)

		switch typ {
		case PAWN:
			p.genPawnMoves(&moves, from, piece, onlyCapture)
		case KNIGHT:
			p.genStepMoves(&moves, from, piece, knightOffsets[:])
		case KING:
			p.genStepMoves(&moves, from, piece, kingOffsets[:])
		case BISHOP:
			p.genSlideMoves(&moves, from, piece, bishopDirs[:])
		case ROOK:
			p.genSlideMoves(&moves, from, piece, rookDirs[:])
		case QUEEN:
			p.genSlideMoves(&moves, from, piece, queenDirs[:])
		}
	}

	if !onlyCapture {
		p.genCastling(&moves, frc)
	}

	if legal {
		moves = p.filterLegal(moves)
	}

	if p.searchMode == SearchAlphaBeta {
		stableSortMoves(moves)
	}

	return moves
}

// addMove appends a move to list, expanding pawn moves that land on the
// back rank into four promotions. Regardless of that expansion, one call
// to addMove bumps the mover's mobility counter exactly once.
func (p *Position) addMove(list *[]Move, from, to Square, piece, captured, flags int) {
	typ := PieceType(piece)
	if typ == PAWN && (Rank(to) == 0 || Rank(to) == 7) {
		for _, promo := range [4]int{QUEEN, ROOK, BISHOP, KNIGHT} {
			*list = append(*list, Move{
				From: from, To: to, Piece: piece,
				Captured: captured, Promote: promo,
				Flags: flags | PROMOTION,
			})
		}
		p.mobilities[piece]++
		return
	}
	*list = append(*list, Move{From: from, To: to, Piece: piece, Captured: captured, Flags: flags})
	p.mobilities[piece]++
}

func (p *Position) genPawnMoves(list *[]Move, from Square, piece int, onlyCapture bool) {
	color := PieceColor(piece)
	offsets := pawnOffsets[color]
	startRank := 6
	if color == BLACK {
		startRank = 1
	}

	if !onlyCapture {
		one := from + Square(offsets[0])
		if onBoard(one) && p.board[one] == 0 {
			p.addMove(list, from, one, piece, 0, NORMAL)

			if Rank(from) == startRank {
				two := from + Square(offsets[1])
				if onBoard(two) && p.board[two] == 0 {
					p.addMove(list, from, two, piece, 0, BIG_PAWN)
				}
			}
		}
	}

	for _, idx := range [2]int{2, 3} {
		to := from + Square(offsets[idx])
		if !onBoard(to) {
			continue
		}
		target := p.board[to]
		if target != 0 {
			if PieceColor(target) != color {
				p.addMove(list, from, to, piece, PieceType(target), CAPTURE)
			}
			continue
		}
		if to == p.epSquare {
			p.addMove(list, from, to, piece, PAWN, EP_CAPTURE)
		}
	}
}

func (p *Position) genStepMoves(list *[]Move, from Square, piece int, offsets []int) {
	color := PieceColor(piece)
	for _, off := range offsets {
		to := from + Square(off)
		if !onBoard(to) {
			continue
		}
		target := p.board[to]
		if target == 0 {
			p.addMove(list, from, to, piece, 0, NORMAL)
		} else if PieceColor(target) != color {
			p.addMove(list, from, to, piece, PieceType(target), CAPTURE)
		}
	}
}

func (p *Position) genSlideMoves(list *[]Move, from Square, piece int, dirs []int) {
	color := PieceColor(piece)
	for _, dir := range dirs {
		to := from + Square(dir)
		for onBoard(to) {
			target := p.board[to]
			if target == 0 {
				p.addMove(list, from, to, piece, 0, NORMAL)
			} else {
				if PieceColor(target) != color {
					p.addMove(list, from, to, piece, PieceType(target), CAPTURE)
				}
				break
			}
			to += Square(dir)
		}
	}
}

// genCastling generates the up-to-two castling moves available to the
// side to move. The destination square follows the Chess960 convention
// (move.To is the rook's square) except in the orthodox case of a king
// on the e-file with a rook on a- or h-file, where it is the king's
// actual post-castle square; this mirrors historical UCI engines that
// never saw a Chess960 position.
func (p *Position) genCastling(list *[]Move, frc bool) {
	us := p.turn
	king := p.kings[us]
	if king == EMPTY {
		return
	}
	rank := Rank(king)

	for q := 0; q < 2; q++ {
		rook := p.castling[us*2+q]
		if rook == EMPTY {
			continue
		}

		kingTo := Square(rank<<4 | (6 - 4*q))
		rookTo := kingTo - 1 + Square(2*q)

		if !p.castlingPathClear(king, rook, kingTo, rookTo) {
			continue
		}
		if p.Attacked(1-us, king) {
			continue
		}
		if !p.kingPathSafe(us, king, kingTo) {
			continue
		}

		flag := KSIDE_CASTLE
		if q == 1 {
			flag = QSIDE_CASTLE
		}

		to := kingTo
		orthodox := File(king) == 4 && (File(rook) == 0 || File(rook) == 7)
		if frc || !orthodox {
			to = rook
		}

		*list = append(*list, Move{
			From: king, To: to, Piece: p.board[king],
			Flags: flag,
		})
	}
}

// castlingPathClear reports whether every square the king and rook must
// cross is empty, except for the king and rook themselves.
func (p *Position) castlingPathClear(king, rook, kingTo, rookTo Square) bool {
	occupied := func(sq Square) bool {
		if sq == king || sq == rook {
			return false
		}
		return p.board[sq] != 0
	}
	for _, sq := range squaresBetweenInclusive(king, kingTo) {
		if occupied(sq) {
			return false
		}
	}
	for _, sq := range squaresBetweenInclusive(rook, rookTo) {
		if occupied(sq) {
			return false
		}
	}
	return true
}

// kingPathSafe reports whether every square the king passes through
// (inclusive of start and end) is free of attack by the opponent.
func (p *Position) kingPathSafe(us int, king, kingTo Square) bool {
	them := 1 - us
	for _, sq := range squaresBetweenInclusive(king, kingTo) {
		if p.Attacked(them, sq) {
			return false
		}
	}
	return true
}

// squaresBetweenInclusive lists the squares from a to b along their
// shared rank, inclusive of both endpoints. a and b must be on the same
// rank (always true for king/rook castling paths).
func squaresBetweenInclusive(a, b Square) []Square {
	step := 1
	if b < a {
		step = -1
	}
	var out []Square
	for sq := a; ; sq += Square(step) {
		out = append(out, sq)
		if sq == b {
			break
		}
	}
	return out
}

// filterLegal retains only the moves that, once applied, leave the
// mover's own king safe.
func (p *Position) filterLegal(moves []Move) []Move {
	us := p.turn
	out := make([]Move, 0, len(moves))
	for _, m := range moves {
		p.MoveRaw(m)
		if !p.Attacked(1-us, p.kings[us]) {
			out = append(out, m)
		}
		p.Undo()
	}
	return out
}
