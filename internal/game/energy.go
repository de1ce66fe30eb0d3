package game

import "math"

// RestoredEnergy returns the energy regenerated between two unix-millisecond
// instants at the configured charge rate. Only whole elapsed seconds count;
// sub-second remainders are not credited and are not carried over, so
// recomputing from the same watermark always yields the same result.
// Callers must guarantee nowMs >= lastUpdatedMs and clamp the sum to the
// energy limit themselves.
func RestoredEnergy(lastUpdatedMs, nowMs, intervalMs int64) float64 {
	chargesPerSecond := 1000.0 / float64(intervalMs)
	return chargesPerSecond * math.Floor(float64(nowMs-lastUpdatedMs)/1000.0)
}
