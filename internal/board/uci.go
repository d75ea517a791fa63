package board

// MoveUCI renders m as a UCI move string ("e2e4", "a7a8q"). Castling
// moves always show the king's destination on the g- or c-file,
// regardless of whether m.To internally holds the rook's square (FRC /
// anomalous files).
func MoveUCI(p *Position, m Move) string {
	kingTo := m.To
	if m.Is(CASTLE_MASK) {
		q := 0
		if m.Is(QSIDE_CASTLE) {
			q = 1
		}
		kingTo = Square(Rank(m.From)<<4 | (6 - 4*q))
	}
	return m.uci(kingTo)
}

// parseUci splits a 4-5 character UCI move string into its from/to
// squares and optional promotion type. ok is false for malformed input.
func parseUci(text string) (from, to Square, promote int, ok bool) {
	if len(text) < 4 {
		return EMPTY, EMPTY, 0, false
	}
	from = anToSquare(text[0:2])
	to = anToSquare(text[2:4])
	if from == EMPTY || to == EMPTY {
		return EMPTY, EMPTY, 0, false
	}
	if len(text) >= 5 {
		pt, isPromo := promoLetterType(text[4])
		if !isPromo {
			return EMPTY, EMPTY, 0, false
		}
		promote = pt
	}
	return from, to, promote, true
}

// MoveObject resolves a (from, to, promote) triple against the legal
// moves available in p. Castling is matched by the king's origin square
// and either destination convention, "king moves onto the rook" (the
// square m.To holds in Chess960 encoding) or the king's own g-/c-file
// destination, whatever frc is, since external callers may speak
// either. frc is passed through to move generation.
func MoveObject(p *Position, from, to Square, promote int, frc bool) Move {
	for _, m := range p.CreateMoves(frc, true, false) {
		if m.From != from || m.Promote != promote {
			continue
		}
		if m.To == to {
			return m
		}
		if m.Is(CASTLE_MASK) {
			q := 0
			if m.Is(QSIDE_CASTLE) {
				q = 1
			}
			kingTo := Square(Rank(m.From)<<4 | (6 - 4*q))
			if kingTo == to {
				return m
			}
		}
	}
	return Move{}
}

// MoveUciToMove resolves a UCI move string against the legal moves
// available in p, returning the null-move sentinel on any parse or
// resolution failure.
func MoveUciToMove(p *Position, text string, frc bool) Move {
	from, to, promote, ok := parseUci(text)
	if !ok {
		return Move{}
	}
	return MoveObject(p, from, to, promote, frc)
}
