// Toprofile counts and prints prime numbers. It is small on purpose: a
// deterministic CPU-bound workload to point a profiler at.
//
// Usage:
//
//	toprofile sieve <max> [--super] [--happy] [--sexy] [--print] [--count]
package main

import (
	"errors"
	"os"
)

// ExitCoder is an interface for errors that have an exit code.
type ExitCoder interface {
	ExitCode() int
}

func main() {
	if err := NewApp().Execute(); err != nil {
		var ec ExitCoder
		if errors.As(err, &ec) {
			os.Exit(ec.ExitCode())
		}
		os.Exit(ExitFailure)
	}
}
