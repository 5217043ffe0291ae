// Command selfplay plays a batch of independent engine-vs-engine games and
// streams one YAML document per finished game.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"middlegame/config"
	"middlegame/game"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command and returns its exit code. Every deferred close
// has run by the time it returns.
func execute(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("selfplay", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML config file")
	outPath := fs.String("out", "", "write game records here instead of stdout")
	eco := fs.String("eco", "", "only pick openings whose ECO code starts with this prefix")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr}).With().Timestamp().Logger()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error().Err(err).Msg("loading config")
		return 1
	}
	logger = logger.Level(cfg.Level())

	out := stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			logger.Error().Err(err).Msg("creating output")
			return 1
		}
		defer f.Close()
		out = f
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, *eco, out, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error().Err(err).Msg("selfplay failed")
		return 1
	}
	return 0
}

type tally struct {
	white, black, draws, unfinished int
}

func (t *tally) add(result string) {
	switch result {
	case game.WhiteWins:
		t.white++
	case game.BlackWins:
		t.black++
	case game.Draw:
		t.draws++
	default:
		t.unfinished++
	}
}

func run(ctx context.Context, cfg *config.Config, eco string, out io.Writer, logger zerolog.Logger) error {
	logger.Info().
		Int("games", cfg.Games).
		Int("concurrency", cfg.Concurrency).
		Int("max_depth", cfg.MaxDepth).
		Msg("selfplay started")

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Concurrency)

	records := make(chan *game.Record)
	written := make(chan error, 1)
	go func() {
		written <- writeRecords(records, out, logger)
	}()

	for i := 0; i < cfg.Games && gctx.Err() == nil; i++ {
		opts := game.Options{
			Openings:        cfg.Openings,
			ECO:             eco,
			MaxDepth:        cfg.MaxDepth,
			TTCapacity:      cfg.TTCapacity,
			DisableNullMove: !cfg.NullMove,
			MaxPlies:        cfg.MaxPlies,
		}
		gameLogger := logger.With().Int("n", i+1).Logger()
		opts.Logger = &gameLogger
		// each game gets its own stream so results do not depend on scheduling
		if cfg.Seed != "" {
			opts.Rand = game.NewRand(fmt.Sprintf("%s/%d", cfg.Seed, i))
		}
		g.Go(func() error {
			rec, err := game.Play(gctx, opts)
			if err != nil {
				return err
			}
			select {
			case <-gctx.Done():
				return gctx.Err()
			case records <- rec:
			}
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	close(records)
	return errors.Join(err, <-written)
}

func writeRecords(records <-chan *game.Record, out io.Writer, logger zerolog.Logger) error {
	enc := yaml.NewEncoder(out)
	var t tally
	var encErr error
	for rec := range records {
		t.add(rec.Result)
		if encErr == nil {
			encErr = enc.Encode(rec)
		}
		logger.Info().
			Str("id", rec.ID).
			Str("opening", rec.Opening).
			Str("result", rec.Result).
			Str("termination", string(rec.Termination)).
			Int("white", t.white).
			Int("black", t.black).
			Int("draws", t.draws).
			Msg("game finished")
	}
	logger.Info().
		Int("white", t.white).
		Int("black", t.black).
		Int("draws", t.draws).
		Int("unfinished", t.unfinished).
		Msg("selfplay finished")
	return errors.Join(encErr, enc.Close())
}
