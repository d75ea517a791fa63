package board

// knightPairs enumerates the 10 ways to choose 2 of 5 remaining squares
// for the knights, in the canonical order used by Scharnagl's Chess960
// numbering scheme.
var knightPairs = [10][2]int{
	{0, 1}, {0, 2}, {0, 3}, {0, 4},
	{1, 2}, {1, 3}, {1, 4},
	{2, 3}, {2, 4},
	{3, 4},
}

// Fen960 returns the starting FEN for Chess960 index 0..959 (the
// Scharnagl numbering scheme: dark-square bishop, then light-square
// bishop, then queen among the remaining squares, then one of ten
// knight placements, with the three leftover squares filled R-K-R).
// It returns "" for an out-of-range index.
func Fen960(index int) string {
	if index < 0 || index > 959 {
		return ""
	}

	n := index
	files := [8]byte{}
	occupied := [8]bool{}

	place := func(f int, c byte) { files[f] = c; occupied[f] = true }

	darkBishop := 2*(n%4) + 1
	n /= 4
	lightBishop := 2 * (n % 4)
	n /= 4
	place(darkBishop, 'B')
	place(lightBishop, 'B')

	remaining := make([]int, 0, 6)
	for f := 0; f < 8; f++ {
		if !occupied[f] {
			remaining = append(remaining, f)
		}
	}
	queenIdx := n % 6
	n /= 6
	place(remaining[queenIdx], 'Q')
	remaining = append(remaining[:queenIdx], remaining[queenIdx+1:]...)

	pair := knightPairs[n]
	place(remaining[pair[0]], 'N')
	place(remaining[pair[1]], 'N')
	var rest []int
	for i, f := range remaining {
		if i != pair[0] && i != pair[1] {
			rest = append(rest, f)
		}
	}

	place(rest[0], 'R')
	place(rest[1], 'K')
	place(rest[2], 'R')

	row := make([]byte, 8)
	copy(row, files[:])

	whiteRank := string(row)
	blackRank := make([]byte, 8)
	for i, c := range row {
		blackRank[i] = c + ('a' - 'A')
	}

	castling := string([]byte{
		byte('A' + rest[0]), byte('A' + rest[2]),
		byte('a' + rest[0]), byte('a' + rest[2]),
	})

	return string(blackRank) + "/pppppppp/8/8/8/8/PPPPPPPP/" + whiteRank +
		" w " + castling + " - 0 1"
}
