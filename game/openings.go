package game

import (
	"crypto/sha256"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"lukechampine.com/frand"

	"middlegame/config"
	"middlegame/rules"
)

var ErrNoOpenings = errors.New("no openings to choose from")

// NewRand returns a deterministic generator for a non-empty seed, or nil to
// use the package-level frand source.
func NewRand(seed string) *frand.RNG {
	if seed == "" {
		return nil
	}
	sum := sha256.Sum256([]byte(seed))
	return frand.NewCustom(sum[:], 1024, 12)
}

// FilterOpenings keeps the openings whose ECO code starts with prefix.
func FilterOpenings(openings []config.Opening, prefix string) []config.Opening {
	if prefix == "" {
		return openings
	}
	return lo.Filter(openings, func(o config.Opening, _ int) bool {
		return strings.HasPrefix(o.ECO, prefix)
	})
}

// SelectOpening picks one opening uniformly at random.
func SelectOpening(openings []config.Opening, rng *frand.RNG) (config.Opening, error) {
	if len(openings) == 0 {
		return config.Opening{}, ErrNoOpenings
	}
	if rng == nil {
		return openings[frand.Intn(len(openings))], nil
	}
	return openings[rng.Intn(len(openings))], nil
}

// ApplyOpening plays the opening's moves on pos and returns them as played.
// It stops at the first move that is not legal in the current position.
func ApplyOpening(pos *rules.Position, opening config.Opening, history *History, logger zerolog.Logger) []string {
	var played []string
	for _, san := range opening.SAN() {
		m, err := pos.ParseSAN(san)
		if err != nil {
			logger.Warn().Err(err).Str("opening", opening.Name).Str("move", san).Msg("invalid move in opening")
			break
		}
		played = append(played, pos.FormatSAN(m))
		pos.Apply(m)
		history.Push(pos.Hash(), pos.HalfmoveClock())
	}
	return played
}
