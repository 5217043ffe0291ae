package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog"

	"middlegame/config"
	"middlegame/engine"
	"middlegame/game"
	"middlegame/rules"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults and MIDDLEGAME_* env vars otherwise)")
	eco := flag.String("eco", "", "only pick openings whose ECO code starts with this prefix")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("loading config")
	}
	logger = logger.Level(cfg.Level())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Starting game:\n%s\n", rules.StartPosition())
	rec, err := game.Play(ctx, game.Options{
		Openings:        cfg.Openings,
		ECO:             *eco,
		MaxDepth:        cfg.MaxDepth,
		TTCapacity:      cfg.TTCapacity,
		DisableNullMove: !cfg.NullMove,
		MaxPlies:        cfg.MaxPlies,
		Rand:            game.NewRand(cfg.Seed),
		Logger:          &logger,
		OnMove: func(pos *rules.Position, san string, res engine.Result) {
			fmt.Printf("Best move: %s (%s, depth %d, %d nodes)\n%s\n",
				san, engine.FormatScore(res.Score, res.Depth), res.Depth, res.Nodes, pos)
		},
	})
	if err != nil && rec == nil {
		logger.Fatal().Err(err).Msg("playing game")
	}

	if rec.Opening != "" {
		fmt.Printf("Opening: %s - %s (%d plies)\n", rec.ECO, rec.Opening, rec.OpeningPlies)
	}
	switch rec.Termination {
	case game.Checkmate:
		winner := "White"
		if rec.Result == game.BlackWins {
			winner = "Black"
		}
		fmt.Printf("Checkmate! %s wins.\n", winner)
	case game.Stalemate, game.FiftyMoveRule, game.Threefold:
		fmt.Printf("Draw by %s.\n", rec.Termination)
	default:
		fmt.Printf("Game ended (%s).\n", rec.Termination)
	}
	fmt.Printf("Result: %s after %d plies\nFinal position: %s\n", rec.Result, rec.Plies, rec.FinalFEN)
	if err != nil {
		logger.Warn().Err(err).Msg("game interrupted")
	}
}
