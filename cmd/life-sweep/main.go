package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"time"

	"lifefb/internal/sweep"
)

func main() {
	opts := sweep.Options{}
	flag.IntVar(&opts.Width, "w", 100, "grid width in cells")
	flag.IntVar(&opts.Height, "h", 100, "grid height in cells")
	flag.StringVar(&opts.Scene, "scene", "soup", "scene to seed each board with")
	flag.Int64Var(&opts.FirstSeed, "seed", 1, "first seed")
	flag.IntVar(&opts.Seeds, "n", 64, "number of consecutive seeds to run")
	flag.IntVar(&opts.Generations, "gens", 2000, "generation budget per board")
	flag.IntVar(&opts.Workers, "workers", runtime.NumCPU(), "number of boards simulated at once")
	top := flag.Int("top", 10, "results to print")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Sweeping %d seeds of %q on %dx%d (%d workers, %d generations)\n",
		opts.Seeds, opts.Scene, opts.Width, opts.Height, opts.Workers, opts.Generations)

	start := time.Now()
	results, err := sweep.Run(ctx, opts)
	if err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start)

	fmt.Printf("\nTop %d results (elapsed %s):\n", min(*top, len(results)), elapsed.Round(time.Millisecond))
	for i := 0; i < len(results) && i < *top; i++ {
		res := results[i]
		fmt.Printf("%2d) seed=%d outcome=%s settled=%d peak=%d final=%d gens=%d\n",
			i+1, res.Seed, res.Outcome, res.SettledAt, res.Peak, res.Final, res.Generations)
	}

	counts := map[sweep.Outcome]int{}
	for _, res := range results {
		counts[res.Outcome]++
	}
	fmt.Printf("\nactive=%d period-2=%d static=%d extinct=%d\n",
		counts[sweep.Active], counts[sweep.Oscillating], counts[sweep.Static], counts[sweep.Extinct])
}
