package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rs/zerolog"

	"middlegame/engine"
	"middlegame/rules"
)

func main() {
	depthFlag := flag.Int("depth", 5, "search depth in plies")
	repeatFlag := flag.Int("repeat", 1, "number of searches to run")
	fenFlag := flag.String("fen", rules.StartFEN, "FEN to search")
	ttFlag := flag.Int("tt", engine.DefaultTTCapacity, "transposition table capacity in entries")
	noNull := flag.Bool("nonull", false, "disable null-move pruning")
	verbose := flag.Bool("v", false, "log every iteration")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	memProfile := flag.String("memprofile", "", "write memory profile (heap) to file")
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	if *depthFlag <= 0 {
		logger.Fatal().Int("depth", *depthFlag).Msg("depth must be positive")
	}
	pos, err := rules.NewPosition(*fenFlag)
	if err != nil {
		logger.Fatal().Err(err).Msg("parsing FEN")
	}

	if *cpuProfile != "" {
		cpuFile, err := os.Create(*cpuProfile)
		if err != nil {
			logger.Fatal().Err(err).Msg("could not create CPU profile")
		}
		if err := pprof.StartCPUProfile(cpuFile); err != nil {
			logger.Fatal().Err(err).Msg("could not start CPU profile")
		}
		defer func() {
			pprof.StopCPUProfile()
			cpuFile.Close()
		}()
	}

	opts := []engine.Option{engine.WithLogger(logger), engine.WithTTCapacity(*ttFlag)}
	if *noNull {
		opts = append(opts, engine.WithoutNullMove())
	}

	fmt.Printf("searchbench: fen=%q depth=%d repeat=%d\n", pos.FEN(), *depthFlag, *repeatFlag)

	var totalNodes uint64
	startAll := time.Now()
	for i := 0; i < *repeatFlag; i++ {
		// fresh tables for each run so timings are comparable
		searcher := engine.NewSearcher(opts...)
		res := searcher.BestMove(pos.Clone(), *depthFlag)
		totalNodes += res.Nodes

		best := "(none)"
		if res.Move != engine.NullMove {
			best = pos.FormatSAN(res.Move)
		}
		fmt.Printf("iteration %d: bestmove %s  score=%s  nodes=%d  time=%v\n",
			i+1, best, engine.FormatScore(res.Score, res.Depth), res.Nodes, res.Elapsed)
	}
	totalElapsed := time.Since(startAll)
	fmt.Printf("total time: %v  nps: %.0f\n", totalElapsed, float64(totalNodes)/totalElapsed.Seconds())

	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			logger.Fatal().Err(err).Msg("could not create memory profile")
		}
		defer f.Close()

		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			logger.Fatal().Err(err).Msg("could not write memory profile")
		}
	}
}
