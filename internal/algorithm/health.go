package algorithm

import (
	"math"
	"time"
)

// Health implements spec §4.2. Returns 30 when the task has never been
// done, 100 on the day of completion, decays linearly to a 50 floor by
// the expected interval, then continues decaying linearly (capped) down
// to a hard floor of 10 once overdue.
func Health(lastDone *time.Time, expectedInterval int, today time.Time) int {
	if lastDone == nil {
		return 30
	}

	interval := normalizeInterval(expectedInterval)
	days := daysSince(lastDone, interval, today)

	switch {
	case days == 0:
		return 100
	case days <= interval:
		decayPerDay := 50.0 / float64(interval)
		return int(math.Floor(100 - float64(days)*decayPerDay))
	default:
		extra := days - interval
		extraDecay := math.Min(40, float64(extra)*(30.0/float64(interval)))
		return int(math.Max(10, math.Floor(50-extraDecay)))
	}
}
