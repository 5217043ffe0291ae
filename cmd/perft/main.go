package main

import (
	"cmp"
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/dylhunn/dragontoothmg"
	"github.com/rs/zerolog"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"middlegame/rules"
)

func main() {
	fen := flag.String("fen", rules.StartFEN, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	memProf := flag.String("memprofile", "", "Write heap profile to file after run")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if *depth <= 0 {
		logger.Error().Msg("-depth must be > 0")
		os.Exit(2)
	}

	pos, err := rules.NewPosition(*fen)
	if err != nil {
		logger.Error().Err(err).Msg("parsing FEN")
		os.Exit(2)
	}

	if *divide {
		div := pos.PerftDivide(*depth)
		moves := maps.Keys(div)
		slices.SortFunc(moves, func(a, b dragontoothmg.Move) int {
			return cmp.Compare(a.String(), b.String())
		})
		var sum uint64
		for _, m := range moves {
			fmt.Printf("%s: %d\n", m.String(), div[m])
			sum += div[m]
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			logger.Error().Err(err).Msg("creating cpuprofile")
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			logger.Error().Err(err).Msg("start cpu profile")
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += pos.Perft(*depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)

	if *memProf != "" {
		f, err := os.Create(*memProf)
		if err != nil {
			logger.Error().Err(err).Msg("creating memprofile")
			os.Exit(2)
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			logger.Error().Err(err).Msg("write heap profile")
			os.Exit(2)
		}
		_ = f.Close()
	}
}
