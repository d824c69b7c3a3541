package main

import (
	"flag"
	"math"

	"github.com/akfreed/HighPerformanceTimer/examples/gameloop"
)

func main() {

	var rate float64
	var workers int
	var frames int
	var verbose bool
	flag.Float64Var(&rate, "rate", 60, "target ticks per second")
	flag.IntVar(&workers, "workers", 4, "worker pool size")
	flag.IntVar(&frames, "frames", 300, "frames to run")
	flag.BoolVar(&verbose, "v", false, "log per-frame timing")
	flag.Parse()

	loop, err := gameloop.NewLoop(gameloop.LoopConfig{
		TickRate: rate,
		Workers:  workers,
		Frames:   frames,
		Verbose:  verbose,
	})
	if err != nil {
		panic(err)
	}
	defer loop.Release()

	loop.Run(func(frame, worker int) {
		// Stand-in for per-entity simulation work.
		x := float64(frame*worker) + 1
		for i := 0; i < 1000; i++ {
			x = math.Sqrt(x + float64(i))
		}
		_ = x
	})
}
