package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tamirms/primesieve"
	sieveerrors "github.com/tamirms/primesieve/errors"
)

type sieveFlags struct {
	super       bool
	happy       bool
	sexy        bool
	print       bool
	count       bool
	fingerprint bool
	hash        string
}

func (a *App) newSieveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sieve <max>",
		Short: "Use the Sieve of Eratosthenes to find prime numbers",
		Long: `Find every prime up to <max> by trial division against the primes
found so far. Filters combine with AND; the catch-up emission of a
sexy partner is not filtered again, so combining --sexy with other
filters is not a plain intersection.`,
		Args: cobra.ExactArgs(1),
		RunE: a.runSieve,
	}

	f := cmd.Flags()
	f.BoolVar(&a.sieve.super, "super", false, "only accept super primes")
	f.BoolVar(&a.sieve.happy, "happy", false, "only accept happy primes")
	f.BoolVar(&a.sieve.sexy, "sexy", false, "only accept sexy primes")
	f.BoolVar(&a.sieve.print, "print", false, "print the primes to standard out")
	f.BoolVar(&a.sieve.count, "count", false, "print the count to standard out")
	f.BoolVar(&a.sieve.fingerprint, "fingerprint", false, "print a digest of the emitted primes")
	f.StringVar(&a.sieve.hash, "hash", "xxh64", "digest: xxh64, xxh3 or murmur3")

	return cmd
}

// applyConfigDefaults fills every flag the user did not set from the config.
func (a *App) applyConfigDefaults(cmd *cobra.Command) {
	if a.cfg == nil {
		return
	}
	def := a.cfg.Sieve
	set := cmd.Flags().Changed
	if !set("super") {
		a.sieve.super = def.Super
	}
	if !set("happy") {
		a.sieve.happy = def.Happy
	}
	if !set("sexy") {
		a.sieve.sexy = def.Sexy
	}
	if !set("print") {
		a.sieve.print = def.Print
	}
	if !set("count") {
		a.sieve.count = def.Count
	}
	if !set("fingerprint") {
		a.sieve.fingerprint = def.Fingerprint
	}
	if !set("hash") && def.Hash != "" {
		a.sieve.hash = def.Hash
	}
}

// parseMax parses the <max> argument. Bounds below 2 are accepted and find
// nothing; negative bounds are rejected.
func parseMax(arg string) (int, error) {
	max, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid <max> %q: %w", arg, err)
	}
	if max < 0 {
		return 0, fmt.Errorf("%w: %d", sieveerrors.ErrNegativeBound, max)
	}
	return max, nil
}

func (a *App) runSieve(cmd *cobra.Command, args []string) error {
	a.applyConfigDefaults(cmd)

	max, err := parseMax(args[0])
	if err != nil {
		return exitWithCode(ExitFailure, err)
	}
	algo, err := primesieve.ParseHashAlgorithm(a.sieve.hash)
	if err != nil {
		return exitWithCode(ExitFailure, err)
	}

	filter := primesieve.Filter{
		Super: a.sieve.super,
		Happy: a.sieve.happy,
		Sexy:  a.sieve.sexy,
	}

	var rec *primesieve.Recorder
	if a.sieve.fingerprint {
		if rec, err = primesieve.NewRecorder(algo); err != nil {
			return exitWithCode(ExitFailure, err)
		}
	}

	count := 0
	sink := func(p int) {
		if a.sieve.print {
			fmt.Fprintln(a.stdout, p)
		}
		count++
		if rec != nil {
			rec.Sink()(p)
		}
	}

	start := time.Now()
	primes := primesieve.Sieve(max, filter, sink, primesieve.WithLogger(a.logger))
	elapsed := time.Since(start)

	a.logger.Info("sieve finished",
		zap.Int("max", max),
		zap.Stringer("filter", filter),
		zap.Int("primes", primes.Len()),
		zap.Int("emitted", count),
		zap.Duration("elapsed", elapsed))

	if a.sieve.count {
		fmt.Fprintf(a.stdout, "COUNT: %d\n", count)
	}
	if rec != nil {
		fmt.Fprintf(a.stdout, "FINGERPRINT: %016x (%s)\n", rec.Sum64(), rec.Algorithm())
	}
	return nil
}
