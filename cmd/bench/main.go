// Command bench runs a synthetic single-goroutine workload against the
// cache or the memoizing wrapper and exposes optional pprof/Prometheus
// endpoints.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	_ "net/http/pprof" // registers /debug/pprof/* on DefaultServeMux
	"os"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/memokit/memocache/cache"
	"github.com/memokit/memocache/memo"
	pmet "github.com/memokit/memocache/metrics/prom"
)

func main() {
	// ---- Flags ----
	var (
		mode     = flag.String("mode", "cache", "workload: cache | memo")
		capacity = flag.Int("cap", 100_000, "cache capacity (entries)")

		duration = flag.Duration("duration", 10*time.Second, "benchmark duration")
		readPct  = flag.Int("reads", 80, "read percentage [0..100] (cache mode)")

		keys    = flag.Int("keys", 1_000_000, "keyspace size")
		zipfS   = flag.Float64("zipf_s", 1.1, "Zipf s > 1 (skew)")
		zipfV   = flag.Float64("zipf_v", 1.0, "Zipf v")
		seed    = flag.Int64("seed", time.Now().UnixNano(), "random seed")
		preload = flag.Int("preload", 0, "preload entries (0 = cap/2, cache mode)")

		typed = flag.Bool("typed", false, "type-sensitive keys (memo mode)")

		pprofAddr   = flag.String("pprof", "", "serve pprof at addr (e.g. :6060); empty = disabled")
		metricsAddr = flag.String("http", ":8080", "serve Prometheus metrics at addr")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	// ---- pprof server (on DefaultServeMux) ----
	if *pprofAddr != "" {
		go func() {
			logger.Info("pprof: serving", "addr", *pprofAddr)
			logger.Error("pprof server stopped", "err", http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	// ---- Prometheus metrics (on DefaultServeMux) ----
	metrics := pmet.New(nil, "memocache", "bench", nil)
	http.Handle("/metrics", promhttp.Handler())
	go func() {
		logger.Info("metrics: serving", "addr", *metricsAddr)
		logger.Error("metrics server stopped", "err", http.ListenAndServe(*metricsAddr, nil))
	}()

	// The workload runs on a single goroutine: the cache and the wrapper
	// are single-caller by design, so the driver is too.
	r := rand.New(rand.NewSource(*seed))
	zipf := rand.NewZipf(r, *zipfS, *zipfV, uint64(*keys-1))

	logger.Info("bench: starting",
		"mode", *mode, "cap", *capacity, "keys", *keys, "seed", *seed)

	switch *mode {
	case "cache":
		runCache(logger, r, zipf, *capacity, *preload, *readPct, *duration, metrics)
	case "memo":
		runMemo(logger, zipf, *capacity, *typed, *duration, metrics)
	default:
		logger.Error("unknown mode (use cache or memo)", "mode", *mode)
		os.Exit(2)
	}
}

// runCache drives a read/write mix with Zipf-distributed keys against a
// single cache instance and reports throughput and hit rate.
func runCache(logger *slog.Logger, r *rand.Rand, zipf *rand.Zipf,
	capacity, preload, readPct int, d time.Duration, m cache.Metrics) {

	c, err := cache.New(capacity, cache.WithMetrics[string, string](m))
	if err != nil {
		logger.Error("cache construction failed", "err", err)
		os.Exit(1)
	}

	// Preload half the capacity to get a realistic hit-rate.
	if preload == 0 {
		preload = capacity / 2
	}
	for i := 0; i < preload; i++ {
		c.Put("k:"+strconv.Itoa(i), "v"+strconv.Itoa(i))
	}

	var reads, writes, hits uint64
	start := time.Now()
	deadline := start.Add(d)
	for time.Now().Before(deadline) {
		// Batch the deadline check: the clock read is not free.
		for i := 0; i < 1024; i++ {
			k := "k:" + strconv.FormatUint(zipf.Uint64(), 10)
			if int(r.Int31n(100)) < readPct {
				reads++
				if _, ok := c.Get(k); ok {
					hits++
				}
			} else {
				writes++
				c.Put(k, "v"+strconv.Itoa(r.Int()))
			}
		}
	}
	elapsed := time.Since(start)

	total := reads + writes
	hitRate := 0.0
	if reads > 0 {
		hitRate = float64(hits) / float64(reads) * 100
	}
	fmt.Printf("mode=cache cap=%d dur=%v\n", capacity, elapsed)
	fmt.Printf("ops=%d (%.0f ops/s)  reads=%d  writes=%d\n",
		total, float64(total)/elapsed.Seconds(), reads, writes)
	fmt.Printf("hits=%d  hit-rate=%.2f%%  Len()=%d\n", hits, hitRate, c.Len())
}

// runMemo drives the wrapper with Zipf-distributed arguments and lets
// its own accounting tell the story.
func runMemo(logger *slog.Logger, zipf *rand.Zipf,
	maxSize int, typed bool, d time.Duration, m cache.Metrics) {

	fn := func(args []any, _ map[string]any) (uint64, error) {
		// Stand-in for real work priced at a few hundred nanoseconds.
		n := args[0].(uint64)
		var acc uint64
		for i := uint64(0); i < 64; i++ {
			acc += (n + i) * (n ^ i)
		}
		return acc, nil
	}

	opts := []memo.Option[uint64]{
		memo.WithMaxSize[uint64](maxSize),
		memo.WithMetrics[uint64](m),
	}
	if typed {
		opts = append(opts, memo.WithTypedKeys[uint64]())
	}
	w, err := memo.Wrap(fn, opts...)
	if err != nil {
		logger.Error("wrapper construction failed", "err", err)
		os.Exit(1)
	}

	var calls uint64
	start := time.Now()
	deadline := start.Add(d)
	for time.Now().Before(deadline) {
		for i := 0; i < 1024; i++ {
			if _, err := w.Call(zipf.Uint64()); err != nil {
				logger.Error("call failed", "err", err)
				os.Exit(1)
			}
			calls++
		}
	}
	elapsed := time.Since(start)

	info := w.Stats()
	fmt.Printf("mode=memo max_size=%d typed=%v dur=%v\n", maxSize, typed, elapsed)
	fmt.Printf("calls=%d (%.0f calls/s)\n", calls, float64(calls)/elapsed.Seconds())
	fmt.Printf("stats: %v  hit-rate=%.2f%%\n", info, info.HitRate()*100)
}
