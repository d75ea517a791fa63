// Package config parses the engine's space-separated k=v option string
// into board.Position's search/eval configuration.
package config

import (
	"strconv"
	"strings"

	"github.com/aldekein/chesscore/internal/board"
)

var evalNames = map[string]int{
	"null": board.EvalNull,
	"mat":  board.EvalMat,
	"mob":  board.EvalMob,
	"hce":  board.EvalHCE,
	"qui":  board.EvalQui,
	"nn":   board.EvalNN,
}

var searchNames = map[string]int{
	"rnd": board.SearchRandom,
	"mm":  board.SearchMinimax,
	"ab":  board.SearchAlphaBeta,
}

// Configure applies frc and a space-separated "k=v" options string to
// pos, then commits the result via pos.SetConfig/pos.SetFRC. It always
// resets eval_mode to EvalMat, max_nodes to 1e9, max_time to 0, and
// search_mode to SearchRandom before applying depth and the options
// string — Configure is a full reconfiguration, not an incremental
// patch. depth becomes max_depth when non-negative; a negative depth
// leaves the position's current max_depth untouched, matching how a
// missing d= token does. Recognized keys: d=N (max depth, or max_time
// when N<0), e=name (eval mode), n=N (max nodes), s=name (search
// mode), t=N (max time). Unknown keys and malformed values are
// ignored.
func Configure(pos *board.Position, frc bool, options string, depth int) {
	pos.SetFRC(frc)

	evalMode := board.EvalMat
	searchMode := board.SearchRandom
	maxDepth := pos.MaxDepth()
	if depth >= 0 {
		maxDepth = depth
	}
	maxNodes := 1000000000
	maxTime := 0

	for _, tok := range strings.Fields(options) {
		key, val, ok := strings.Cut(tok, "=")
		if !ok {
			continue
		}
		switch key {
		case "d":
			if n, err := strconv.Atoi(val); err == nil {
				if n < 0 {
					maxTime = -n
				} else {
					maxDepth = n
				}
			}
		case "e":
			if mode, ok := evalNames[val]; ok {
				evalMode = mode
			}
		case "n":
			if n, err := strconv.Atoi(val); err == nil {
				maxNodes = n
			}
		case "s":
			if mode, ok := searchNames[val]; ok {
				searchMode = mode
			}
		case "t":
			if n, err := strconv.Atoi(val); err == nil {
				maxTime = n
			}
		}
	}

	pos.SetConfig(evalMode, searchMode, maxDepth, maxNodes, maxTime)
}
