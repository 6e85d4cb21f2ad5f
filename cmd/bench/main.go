// Bench is a profiling harness for the primesieve kernel: it runs the sieve
// repeatedly and reports throughput, latency, fingerprints and memory usage.
//
// Usage:
//
//	go run ./cmd/bench -max 100000 -sexy -runs 16 -workers 4
//
// Flags:
//
//	-max       Upper bound for each run (default: 100,000)
//	-super     Only emit super primes
//	-happy     Only emit happy primes
//	-sexy      Only emit sexy primes
//	-runs      Number of independent runs (default: 8)
//	-workers   Number of concurrent runs (default: 1)
//	-hash      Fingerprint hash: xxh64, xxh3 or murmur3 (default: xxh64)
//	-verify    Check that two runs agree before benchmarking (default: true)
//	-v         Debug logging
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/metrics"
	"runtime/pprof"
	"slices"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/tamirms/primesieve"
)

func main() {
	maxFlag := flag.Int("max", 100_000, "upper bound for each run")
	superFlag := flag.Bool("super", false, "only emit super primes")
	happyFlag := flag.Bool("happy", false, "only emit happy primes")
	sexyFlag := flag.Bool("sexy", false, "only emit sexy primes")
	runsFlag := flag.Int("runs", 8, "number of independent runs")
	workersFlag := flag.Int("workers", 1, "number of concurrent runs")
	hashFlag := flag.String("hash", "xxh64", "fingerprint hash: xxh64, xxh3 or murmur3")
	verifyFlag := flag.Bool("verify", true, "check that two runs agree before benchmarking")
	verboseFlag := flag.Bool("v", false, "debug logging")
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to file (sieve phase only)")
	memprofile := flag.String("memprofile", "", "write memory profile to file (sieve phase only)")
	flag.Parse()

	logger := newLogger(*verboseFlag)
	defer func() { _ = logger.Sync() }()

	filter := primesieve.Filter{Super: *superFlag, Happy: *happyFlag, Sexy: *sexyFlag}
	algo, err := primesieve.ParseHashAlgorithm(*hashFlag)
	if err != nil {
		logger.Error("Bad -hash", zap.Error(err))
		os.Exit(2)
	}
	if *runsFlag < 1 {
		logger.Error("Bad -runs", zap.Int("runs", *runsFlag))
		os.Exit(2)
	}

	if *verifyFlag {
		logger.Info("Verifying determinism...", zap.Int("max", *maxFlag), zap.Stringer("filter", filter))
		if _, err := primesieve.VerifyDeterministic(*maxFlag, filter, algo); err != nil {
			logger.Error("Verification failed", zap.Error(err))
			os.Exit(1)
		}
	}

	jobs := make([]primesieve.Job, *runsFlag)
	for i := range jobs {
		jobs[i] = primesieve.Job{Max: *maxFlag, Filter: filter}
	}

	runtime.GC()
	time.Sleep(50 * time.Millisecond)
	var baseline runtime.MemStats
	runtime.ReadMemStats(&baseline)
	baselineRSS := getMaxRSS()

	// 10ms sampling for peak memory (both heap and RSS).
	// Uses runtime/metrics instead of ReadMemStats to avoid stop-the-world pauses
	// that distort CPU profiles.
	var peakAlloc atomic.Uint64
	var peakRSS atomic.Uint64
	peakAlloc.Store(baseline.Alloc)
	peakRSS.Store(baselineRSS)
	done := make(chan struct{})
	go samplePeaks(done, &peakAlloc, &peakRSS)

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			logger.Error("Could not create CPU profile", zap.Error(err))
			return
		}
		defer func() { _ = f.Close() }()
		if err := pprof.StartCPUProfile(f); err != nil {
			logger.Error("Could not start CPU profile", zap.Error(err))
			return
		}
	}

	logger.Info("Running sieves...", zap.Int("runs", len(jobs)), zap.Int("workers", *workersFlag))
	start := time.Now()
	results, err := primesieve.RunBatch(context.Background(), jobs,
		primesieve.WithWorkers(*workersFlag),
		primesieve.WithHash(algo),
		primesieve.WithBatchLogger(logger))
	total := time.Since(start)

	if *cpuprofile != "" {
		pprof.StopCPUProfile()
	}
	if *memprofile != "" {
		writeHeapProfile(logger, *memprofile)
	}

	close(done)

	var final runtime.MemStats
	runtime.ReadMemStats(&final)
	if final.Alloc > peakAlloc.Load() {
		peakAlloc.Store(final.Alloc)
	}
	if finalRSS := getMaxRSS(); finalRSS > peakRSS.Load() {
		peakRSS.Store(finalRSS)
	}

	if err != nil {
		logger.Error("Sieve failed", zap.Error(err))
		os.Exit(1)
	}

	rep := summarize(results, total)
	rep.hash = algo
	rep.workers = *workersFlag
	rep.peakHeap = saturatingSub(peakAlloc.Load(), baseline.Alloc)
	rep.peakRSS = saturatingSub(peakRSS.Load(), baselineRSS)

	if term.IsTerminal(int(os.Stdout.Fd())) {
		rep.writeTable(os.Stdout)
	} else {
		rep.writePlain(os.Stdout)
	}
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func samplePeaks(done <-chan struct{}, peakAlloc, peakRSS *atomic.Uint64) {
	samples := []metrics.Sample{
		{Name: "/memory/classes/heap/objects:bytes"},
	}
	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			metrics.Read(samples)
			storeMax(peakAlloc, samples[0].Value.Uint64())
			storeMax(peakRSS, getMaxRSS())
		}
	}
}

func storeMax(peak *atomic.Uint64, v uint64) {
	for {
		old := peak.Load()
		if v <= old || peak.CompareAndSwap(old, v) {
			return
		}
	}
}

func saturatingSub(a, b uint64) uint64 {
	if a < b {
		return 0
	}
	return a - b
}

func writeHeapProfile(logger *zap.Logger, path string) {
	f, err := os.Create(path)
	if err != nil {
		logger.Error("Could not create memory profile", zap.Error(err))
		return
	}
	defer func() { _ = f.Close() }()
	runtime.GC() // Get up-to-date statistics
	if err := pprof.WriteHeapProfile(f); err != nil {
		logger.Error("Could not write memory profile", zap.Error(err))
	}
}

// report is the summary printed at the end of a bench run.
type report struct {
	max      int
	filter   primesieve.Filter
	runs     int
	workers  int
	hash     primesieve.HashAlgorithm
	primes   int
	emitted  int
	setSum   uint64
	emitSum  uint64
	total    time.Duration
	p50      time.Duration
	p99      time.Duration
	peakHeap uint64
	peakRSS  uint64
}

// summarize folds per-run results into a report. All runs share one job, so
// the prime and emission figures come from the first.
func summarize(results []primesieve.Result, total time.Duration) report {
	first := results[0]
	lat := make([]time.Duration, len(results))
	for i, r := range results {
		lat[i] = r.Elapsed
	}
	slices.Sort(lat)

	return report{
		max:     first.Max,
		filter:  first.Filter,
		runs:    len(results),
		primes:  first.Fingerprint.Primes,
		emitted: first.Fingerprint.Emitted,
		setSum:  first.Fingerprint.SetSum,
		emitSum: first.Fingerprint.EmitSum,
		total:   total,
		p50:     percentile(lat, 50),
		p99:     percentile(lat, 99),
	}
}

// percentile returns the p-th percentile of sorted durations.
func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	idx := (len(sorted) - 1) * p / 100
	return sorted[idx]
}

func (r report) throughput() float64 {
	if r.total <= 0 {
		return 0
	}
	return float64(r.max) * float64(r.runs) / r.total.Seconds() / 1_000_000
}

func (r report) writeTable(w io.Writer) {
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "╔═════════════════════╦════════════════════════════════╗\n")
	fmt.Fprintf(w, "║ Max: %-15d║ Filter: %-23s║\n", r.max, r.filter)
	fmt.Fprintf(w, "╠═════════════════════╬════════════════════════════════╣\n")
	fmt.Fprintf(w, "║ Metric              ║ Value                          ║\n")
	fmt.Fprintf(w, "╠═════════════════════╬════════════════════════════════╣\n")
	fmt.Fprintf(w, "║ Primes found        ║ %-31d║\n", r.primes)
	fmt.Fprintf(w, "║ Primes emitted      ║ %-31d║\n", r.emitted)
	fmt.Fprintf(w, "║ Set fingerprint     ║ %016x (%-7s)         ║\n", r.setSum, r.hash)
	fmt.Fprintf(w, "║ Emit fingerprint    ║ %016x (%-7s)         ║\n", r.emitSum, r.hash)
	fmt.Fprintf(w, "║ Runs / workers      ║ %-31s║\n", fmt.Sprintf("%d / %d", r.runs, r.workers))
	fmt.Fprintf(w, "║ Total time          ║ %8.3f sec                   ║\n", r.total.Seconds())
	fmt.Fprintf(w, "║ Run latency p50     ║ %8.3f ms                    ║\n", float64(r.p50.Microseconds())/1000)
	fmt.Fprintf(w, "║ Run latency p99     ║ %8.3f ms                    ║\n", float64(r.p99.Microseconds())/1000)
	fmt.Fprintf(w, "║ Throughput          ║ %8.2f M candidates/sec      ║\n", r.throughput())
	fmt.Fprintf(w, "║ Peak heap memory    ║ %8.1f MB                    ║\n", float64(r.peakHeap)/1_000_000)
	fmt.Fprintf(w, "║ Peak RSS memory     ║ %8.1f MB                    ║\n", float64(r.peakRSS)/1_000_000)
	fmt.Fprintf(w, "╚═════════════════════╩════════════════════════════════╝\n")
}

func (r report) writePlain(w io.Writer) {
	fmt.Fprintf(w, "max: %d\n", r.max)
	fmt.Fprintf(w, "filter: %s\n", r.filter)
	fmt.Fprintf(w, "primes: %d\n", r.primes)
	fmt.Fprintf(w, "emitted: %d\n", r.emitted)
	fmt.Fprintf(w, "set_fingerprint: %016x\n", r.setSum)
	fmt.Fprintf(w, "emit_fingerprint: %016x\n", r.emitSum)
	fmt.Fprintf(w, "hash: %s\n", r.hash)
	fmt.Fprintf(w, "runs: %d\n", r.runs)
	fmt.Fprintf(w, "workers: %d\n", r.workers)
	fmt.Fprintf(w, "total_sec: %.3f\n", r.total.Seconds())
	fmt.Fprintf(w, "latency_p50_ms: %.3f\n", float64(r.p50.Microseconds())/1000)
	fmt.Fprintf(w, "latency_p99_ms: %.3f\n", float64(r.p99.Microseconds())/1000)
	fmt.Fprintf(w, "throughput_mcps: %.2f\n", r.throughput())
	fmt.Fprintf(w, "peak_heap_mb: %.1f\n", float64(r.peakHeap)/1_000_000)
	fmt.Fprintf(w, "peak_rss_mb: %.1f\n", float64(r.peakRSS)/1_000_000)
}
