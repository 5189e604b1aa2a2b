package main

import (
	"flag"
	"os"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/widaT/spinmutex"
)

var (
	workers = flag.Int("workers", 64, "number of pool workers")
	iters   = flag.Int("iters", 100000, "guarded increments per worker")
)

func main() {
	flag.Parse()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	defer ants.Release()

	m := spinmutex.New(uint64(0))

	log.Info().Int("workers", *workers).Int("iters", *iters).Msg("starting contention run")

	start := time.Now()
	var wg sync.WaitGroup
	wg.Add(*workers)
	for i := 0; i < *workers; i++ {
		err := ants.Submit(func() {
			defer wg.Done()
			for j := 0; j < *iters; j++ {
				g := m.Lock()
				*g.Ptr()++
				g.Unlock()
			}
		})
		if err != nil {
			log.Fatal().Err(err).Msg("submit worker")
		}
	}
	wg.Wait()
	elapsed := time.Since(start)

	g := m.Lock()
	got := g.Get()
	g.Unlock()

	want := uint64(*workers) * uint64(*iters)
	if got != want {
		log.Fatal().Uint64("want", want).Uint64("got", got).Msg("lost updates")
	}
	log.Info().
		Uint64("count", got).
		Dur("elapsed", elapsed).
		Dur("per_op", elapsed/time.Duration(got)).
		Msg("all updates accounted for")
}
