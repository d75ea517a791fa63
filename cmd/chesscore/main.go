// Command chesscore is a small CLI front end over the chesscore engine:
// load a FEN, replay a move list, run a fixed-depth search, and print
// the resulting board.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/op/go-logging"

	"github.com/aldekein/chesscore"
)

var log = logging.MustGetLogger("chesscore")

func init() {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatter := logging.NewBackendFormatter(backend, logging.MustStringFormatter(
		`%{time:15:04:05.000} %{level:.4s} %{message}`,
	))
	logging.SetBackend(formatter)
}

func main() {
	fen := flag.String("fen", chesscore.DefaultFEN, "starting position")
	moves := flag.String("moves", "", "space-separated SAN or UCI moves to replay")
	uci := flag.Bool("uci", false, "interpret -moves as UCI instead of SAN")
	options := flag.String("options", "e=mob s=ab", "engine configure() options string")
	depth := flag.Int("depth", 4, "fallback search depth")
	frc := flag.Bool("frc", false, "enable Chess960 castling semantics")
	search := flag.Bool("search", false, "run a search from the resulting position")
	bookDir := flag.String("book", "", "directory for a persistent search-result cache")
	flag.Parse()

	e := chesscore.New()
	e.Configure(*frc, *options, *depth)

	if *bookDir != "" {
		if err := e.OpenBook(*bookDir); err != nil {
			log.Fatalf("could not open book at %q: %v", *bookDir, err)
		}
		defer e.CloseBook()
	}

	applied := e.Load(*fen)
	if applied == "" {
		log.Fatalf("could not load fen %q", *fen)
	}
	log.Infof("loaded %s", applied)
	e.Configure(*frc || e.FRC(), *options, *depth)

	if *moves != "" {
		var played int
		if *uci {
			played = len(e.MultiUci(*moves))
		} else {
			played = len(e.MultiSan(*moves, true))
		}
		log.Infof("replayed %d move(s)", played)
	}

	fmt.Println(e.Print())
	fmt.Println(e.Fen())

	if *search {
		best, score := e.Search("")
		if best.IsNull() {
			log.Warning("no legal moves at this position")
			return
		}
		fmt.Printf("best move: %s (%s)  score: %d  nodes: %d  avg depth: %.2f\n",
			e.Ucify(best), e.MoveToSan(best), score, e.Nodes(), e.AvgDepth())
	}
}
