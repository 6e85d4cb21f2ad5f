package primesieve

import (
	"runtime"

	"go.uber.org/zap"
)

// SieveOption is a functional option for configuring a sieve run.
type SieveOption func(*sieveConfig)

// BatchOption is a functional option for configuring RunBatch.
type BatchOption func(*batchConfig)

type sieveConfig struct {
	logger *zap.Logger
}

func defaultSieveConfig() *sieveConfig {
	return &sieveConfig{
		logger: zap.NewNop(),
	}
}

// WithLogger sets the logger a sieve run reports to. A nil logger is ignored.
// The default discards everything.
func WithLogger(logger *zap.Logger) SieveOption {
	return func(c *sieveConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

type batchConfig struct {
	workers int
	hash    HashAlgorithm
	logger  *zap.Logger
}

func defaultBatchConfig() *batchConfig {
	return &batchConfig{
		workers: runtime.GOMAXPROCS(0),
		hash:    HashXXH64,
		logger:  zap.NewNop(),
	}
}

// WithWorkers sets how many sieve runs may execute at once.
// n must be positive; RunBatch rejects anything else with ErrInvalidWorkers.
func WithWorkers(n int) BatchOption {
	return func(c *batchConfig) {
		c.workers = n
	}
}

// WithHash selects the algorithm used for result fingerprints.
// Default is HashXXH64.
func WithHash(algo HashAlgorithm) BatchOption {
	return func(c *batchConfig) {
		c.hash = algo
	}
}

// WithBatchLogger sets the logger used by RunBatch and handed to every run.
func WithBatchLogger(logger *zap.Logger) BatchOption {
	return func(c *batchConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}
