package main

import (
	"bytes"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/tamirms/primesieve"
)

func TestPercentile(t *testing.T) {
	lat := []time.Duration{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	tests := []struct {
		p    int
		want time.Duration
	}{
		{0, 1},
		{50, 5},
		{99, 9},
		{100, 10},
	}
	for _, tt := range tests {
		if got := percentile(lat, tt.p); got != tt.want {
			t.Errorf("percentile(%d) = %v, want %v", tt.p, got, tt.want)
		}
	}
	if got := percentile(nil, 50); got != 0 {
		t.Errorf("percentile(nil) = %v, want 0", got)
	}
}

func TestSaturatingSub(t *testing.T) {
	if got := saturatingSub(5, 3); got != 2 {
		t.Errorf("saturatingSub(5, 3) = %d", got)
	}
	if got := saturatingSub(3, 5); got != 0 {
		t.Errorf("saturatingSub(3, 5) = %d", got)
	}
}

func TestStoreMax(t *testing.T) {
	var peak atomic.Uint64
	storeMax(&peak, 10)
	storeMax(&peak, 5)
	if peak.Load() != 10 {
		t.Fatalf("peak = %d, want 10", peak.Load())
	}
}

func TestSummarizeAndReport(t *testing.T) {
	filter := primesieve.Filter{Sexy: true}
	fp, err := primesieve.VerifyDeterministic(600, filter, primesieve.HashXXH3)
	if err != nil {
		t.Fatal(err)
	}
	results := []primesieve.Result{
		{Job: primesieve.Job{Max: 600, Filter: filter}, Fingerprint: fp, Elapsed: 3 * time.Millisecond},
		{Job: primesieve.Job{Max: 600, Filter: filter}, Fingerprint: fp, Elapsed: 1 * time.Millisecond},
	}

	rep := summarize(results, 4*time.Millisecond)
	if rep.primes != 109 || rep.emitted != 85 || rep.runs != 2 {
		t.Fatalf("report = %+v", rep)
	}
	if rep.p50 != time.Millisecond {
		t.Errorf("p50 = %v, want 1ms", rep.p50)
	}
	if rep.throughput() <= 0 {
		t.Errorf("throughput = %v, want > 0", rep.throughput())
	}

	var plain bytes.Buffer
	rep.writePlain(&plain)
	for _, want := range []string{"primes: 109\n", "emitted: 85\n", "filter: sexy\n", "runs: 2\n"} {
		if !strings.Contains(plain.String(), want) {
			t.Errorf("plain report missing %q:\n%s", want, plain.String())
		}
	}

	var table bytes.Buffer
	rep.writeTable(&table)
	if !strings.Contains(table.String(), "Primes emitted") {
		t.Errorf("table report missing rows:\n%s", table.String())
	}
}
