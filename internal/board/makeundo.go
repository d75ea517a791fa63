package board

// MoveRaw applies m to the board without legality checking. It is the
// unchecked fast path used by the legal-move filter and by search;
// external callers should go through MoveSan/MoveUci/MoveObject
// instead, since MoveRaw on an illegal move leaves the position
// corrupted. Every call pushes the pre-move state so a matching Undo
// restores the position exactly.
func (p *Position) MoveRaw(m Move) {
	idx := p.ply + 1
	p.ensureStack(idx)
	p.stack[idx+stackBias] = stateEntry{
		castling:  p.castling,
		epSquare:  p.epSquare,
		halfMoves: p.halfMoves,
		kings:     p.kings,
		move:      m,
		valid:     true,
	}

	us := PieceColor(m.Piece)
	them := 1 - us
	typ := PieceType(m.Piece)
	isKing := typ == KING
	isCastle := m.Is(CASTLE_MASK)

	p.halfMoves++
	p.epSquare = EMPTY

	if isCastle {
		q := 0
		if m.Is(QSIDE_CASTLE) {
			q = 1
		}
		rank := Rank(m.From)
		kingTo := Square(rank<<4 | (6 - 4*q))
		rookTo := kingTo - 1 + Square(2*q)
		rookFrom := p.castling[us*2+q]

		p.board[m.From] = 0
		p.board[rookFrom] = 0
		p.board[kingTo] = m.Piece
		p.board[rookTo] = MakePiece(ROOK, us)
		p.kings[us] = kingTo
	} else {
		p.board[m.To] = p.board[m.From]
		p.board[m.From] = 0
		if isKing {
			p.kings[us] = m.To
		}

		if m.Captured != 0 && !m.Is(EP_CAPTURE) {
			p.materials[them] -= PIECE_SCORES[MakePiece(m.Captured, them)]
		}
		for i := 0; i < 2; i++ {
			if p.castling[them*2+i] == m.To {
				p.castling[them*2+i] = EMPTY
			}
		}
		if m.Captured != 0 {
			p.halfMoves = 0
		}

		if typ == ROOK {
			for i := 0; i < 2; i++ {
				if p.castling[us*2+i] == m.From {
					p.castling[us*2+i] = EMPTY
				}
			}
		}

		if typ == PAWN {
			p.halfMoves = 0
			switch {
			case m.Is(BIG_PAWN):
				if us == WHITE {
					p.epSquare = m.To + 16
				} else {
					p.epSquare = m.To - 16
				}
			case m.Is(EP_CAPTURE):
				var capSq Square
				if us == WHITE {
					capSq = m.To + 16
				} else {
					capSq = m.To - 16
				}
				p.board[capSq] = 0
				p.materials[them] -= PIECE_SCORES[MakePiece(PAWN, them)]
			case m.Promote != 0:
				p.board[m.To] = MakePiece(m.Promote, us)
				p.materials[us] += PROMOTE_SCORES[m.Promote]
			}
		}
	}

	if isKing {
		p.castling[us*2+0] = EMPTY
		p.castling[us*2+1] = EMPTY
	}

	p.ply++
	if p.turn == BLACK {
		p.moveNumber++
	}
	p.turn = them
}

// Undo reverses the most recent MoveRaw, restoring board, castling
// rights, ep-square, half-move clock, king squares, materials, turn,
// move number, and ply exactly.
func (p *Position) Undo() {
	entry := p.stack[p.ply+stackBias]
	if !entry.valid {
		return
	}
	m := entry.move

	them := p.turn
	us := 1 - them

	p.castling = entry.castling
	p.epSquare = entry.epSquare
	p.halfMoves = entry.halfMoves
	p.kings = entry.kings

	if m.Is(CASTLE_MASK) {
		q := 0
		if m.Is(QSIDE_CASTLE) {
			q = 1
		}
		rank := Rank(m.From)
		kingTo := Square(rank<<4 | (6 - 4*q))
		rookTo := kingTo - 1 + Square(2*q)
		rookFrom := entry.castling[us*2+q]

		p.board[kingTo] = 0
		p.board[rookTo] = 0
		p.board[m.From] = m.Piece
		p.board[rookFrom] = MakePiece(ROOK, us)
	} else {
		p.board[m.From] = m.Piece
		p.board[m.To] = 0

		if m.Captured != 0 {
			if m.Is(EP_CAPTURE) {
				var capSq Square
				if us == WHITE {
					capSq = m.To + 16
				} else {
					capSq = m.To - 16
				}
				p.board[capSq] = MakePiece(PAWN, them)
				p.materials[them] += PIECE_SCORES[MakePiece(PAWN, them)]
			} else {
				p.board[m.To] = MakePiece(m.Captured, them)
				p.materials[them] += PIECE_SCORES[MakePiece(m.Captured, them)]
			}
		}
		if m.Promote != 0 {
			p.materials[us] -= PROMOTE_SCORES[m.Promote]
		}
	}

	p.turn = us
	if us == BLACK {
		p.moveNumber--
	}
	p.ply--
}

// IsCheckmate reports whether the side to move has no legal moves and
// is in check.
func (p *Position) IsCheckmate() bool {
	return p.Checked(p.turn) && len(p.CreateMoves(p.frc, true, false)) == 0
}

// IsStalemate reports whether the side to move has no legal moves and
// is not in check.
func (p *Position) IsStalemate() bool {
	return !p.Checked(p.turn) && len(p.CreateMoves(p.frc, true, false)) == 0
}
