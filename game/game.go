// Package game plays complete self-play games: a random book opening
// followed by engine moves until the game is decided or cut off.
package game

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"lukechampine.com/frand"

	"middlegame/config"
	"middlegame/engine"
	"middlegame/rules"
)

type Termination string

const (
	Checkmate     Termination = "checkmate"
	Stalemate     Termination = "stalemate"
	FiftyMoveRule Termination = "fifty-move rule"
	Threefold     Termination = "threefold repetition"
	PlyLimit      Termination = "ply limit"
	Canceled      Termination = "canceled"
)

const (
	WhiteWins  = "1-0"
	BlackWins  = "0-1"
	Draw       = "1/2-1/2"
	Unfinished = "*"
)

// Record is the outcome of one game.
type Record struct {
	ID           string        `yaml:"id"`
	ECO          string        `yaml:"eco,omitempty"`
	Opening      string        `yaml:"opening,omitempty"`
	StartFEN     string        `yaml:"start_fen"`
	Moves        []string      `yaml:"moves"`
	OpeningPlies int           `yaml:"opening_plies"`
	Result       string        `yaml:"result"`
	Termination  Termination   `yaml:"termination"`
	FinalFEN     string        `yaml:"final_fen"`
	Plies        int           `yaml:"plies"`
	Duration     time.Duration `yaml:"duration"`
}

// MoveFunc observes every engine move after it has been played.
type MoveFunc func(pos *rules.Position, san string, res engine.Result)

type Options struct {
	// Openings to choose from. With none the game starts from StartFEN.
	Openings []config.Opening
	// ECO restricts Openings to codes with this prefix.
	ECO string

	MaxDepth        int
	TTCapacity      int
	DisableNullMove bool
	// MaxPlies caps the game length, book moves included. Zero means no cap.
	MaxPlies int

	// Rand drives the opening choice; nil uses the shared frand source.
	Rand *frand.RNG
	// Logger defaults to a disabled logger.
	Logger   *zerolog.Logger
	StartFEN string
	OnMove   MoveFunc
}

// Play runs one game. On cancellation the partial record is returned along
// with the context error.
func Play(ctx context.Context, opts Options) (*Record, error) {
	start := time.Now()
	rec := &Record{ID: uuid.NewString(), StartFEN: opts.StartFEN}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = opts.Logger.With().Str("game", rec.ID).Logger()
	}

	if rec.StartFEN == "" {
		rec.StartFEN = rules.StartFEN
	}
	pos, err := rules.NewPosition(rec.StartFEN)
	if err != nil {
		return nil, err
	}

	history := &History{}
	history.Push(pos.Hash(), pos.HalfmoveClock())

	openings := FilterOpenings(opts.Openings, opts.ECO)
	if len(openings) > 0 {
		opening, err := SelectOpening(openings, opts.Rand)
		if err != nil {
			return nil, err
		}
		rec.ECO, rec.Opening = opening.ECO, opening.Name
		rec.Moves = ApplyOpening(pos, opening, history, logger)
		rec.OpeningPlies = len(rec.Moves)
		logger.Info().Str("eco", opening.ECO).Str("opening", opening.Name).Int("plies", rec.OpeningPlies).Msg("opening played")
	} else if len(opts.Openings) > 0 {
		return nil, fmt.Errorf("%w: eco filter %q", ErrNoOpenings, opts.ECO)
	}

	searchOpts := []engine.Option{engine.WithLogger(logger)}
	if opts.TTCapacity > 0 {
		searchOpts = append(searchOpts, engine.WithTTCapacity(opts.TTCapacity))
	}
	if opts.DisableNullMove {
		searchOpts = append(searchOpts, engine.WithoutNullMove())
	}
	searcher := engine.NewSearcher(searchOpts...)

	finish := func(result string, term Termination) *Record {
		rec.Result, rec.Termination = result, term
		rec.FinalFEN = pos.FEN()
		rec.Plies = len(rec.Moves)
		rec.Duration = time.Since(start)
		logger.Info().Str("result", result).Str("termination", string(term)).Int("plies", rec.Plies).Msg("game over")
		return rec
	}

	for {
		if err := ctx.Err(); err != nil {
			return finish(Unfinished, Canceled), fmt.Errorf("game %s: %w", rec.ID, err)
		}
		// the search returns NullMove exactly when the game is decided, and
		// mate or stalemate outranks the draw claims and the cap below
		res := searcher.BestMove(pos, opts.MaxDepth)
		if res.Move == engine.NullMove {
			if pos.InCheck() {
				return finish(winner(!pos.WhiteToMove()), Checkmate), nil
			}
			return finish(Draw, Stalemate), nil
		}
		if history.IsFiftyMove() {
			return finish(Draw, FiftyMoveRule), nil
		}
		if history.IsThreefold() {
			return finish(Draw, Threefold), nil
		}
		if opts.MaxPlies > 0 && len(rec.Moves) >= opts.MaxPlies {
			return finish(Unfinished, PlyLimit), nil
		}

		san := pos.FormatSAN(res.Move)
		pos.Apply(res.Move)
		history.Push(pos.Hash(), pos.HalfmoveClock())
		rec.Moves = append(rec.Moves, san)

		logger.Debug().
			Str("move", san).
			Int("ply", len(rec.Moves)).
			Str("score", engine.FormatScore(res.Score, res.Depth)).
			Uint64("nodes", res.Nodes).
			Dur("elapsed", res.Elapsed).
			Msg("engine move")
		if opts.OnMove != nil {
			opts.OnMove(pos, san, res)
		}
	}
}

func winner(white bool) string {
	if white {
		return WhiteWins
	}
	return BlackWins
}
