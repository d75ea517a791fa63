package board

import (
	"fmt"

	"github.com/clinaresl/table"
)

// pieceGlyphs maps a piece nibble to its Unicode chess symbol, indexed
// the same way as PieceNames.
var pieceGlyphs = [16]rune{
	' ', '♙', '♘', '♗', '♖', '♕', '♔', ' ', ' ',
	'♟', '♞', '♝', '♜', '♛', '♚',
}

// String renders the board as an 8x8 grid via github.com/clinaresl/table,
// shading empty dark squares for readability on a plain terminal.
func (p *Position) String() string {
	tab, err := table.NewTable("||cccccccc||")
	if err != nil {
		return fmt.Sprintf("<board: %v>", err)
	}
	tab.AddDoubleRule()

	for rank := 0; rank < 8; rank++ {
		line := make([]any, 8)
		for file := 0; file < 8; file++ {
			sq := Square(rank<<4 | file)
			piece := p.board[sq]
			if piece == 0 {
				if (rank+file)%2 == 1 {
					line[file] = "▒"
				} else {
					line[file] = " "
				}
				continue
			}
			line[file] = string(pieceGlyphs[piece])
		}
		tab.AddRow(line...)
	}

	tab.AddDoubleRule()
	return fmt.Sprintf("%v", tab)
}
