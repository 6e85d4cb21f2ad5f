//go:build !unix

package main

// getMaxRSS is unavailable without getrusage; RSS columns report zero.
func getMaxRSS() uint64 {
	return 0
}
