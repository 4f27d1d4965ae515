package algorithm

import (
	"math"
	"time"
)

// Urgency implements spec §4.1: U(last_done, expected_interval, importance, today).
//
//  1. days_since = today - last_done, or 2*I if last_done is ⊥
//  2. base = days_since / I
//  3. overdue = max(0, days_since - I)
//  4. overdue_factor = 1 + ln(1 + 0.3*overdue)
//  5. importance_weight = 0.6 + 0.2*(importance-1), mapping [1,5] -> [0.6,1.4]
//  6. urgency = round2(base * overdue_factor * importance_weight)
//
// I <= 0 is guarded to 1 (spec §9 open question).
func Urgency(lastDone *time.Time, expectedInterval, importance int, today time.Time) float64 {
	interval := float64(normalizeInterval(expectedInterval))

	days := float64(daysSince(lastDone, normalizeInterval(expectedInterval), today))

	base := days / interval
	overdue := math.Max(0, days-interval)
	overdueFactor := 1 + math.Log(1+0.3*overdue)
	importanceWeight := 0.6 + 0.2*float64(importance-1)

	return round2(base * overdueFactor * importanceWeight)
}

func normalizeInterval(i int) int {
	if i <= 0 {
		return 1
	}
	return i
}

// round2 rounds to 2 decimal places, half-away-from-zero. Spec §4.1
// permits either banker's rounding or half-away-from-zero as long as the
// implementation is internally consistent; this repo always uses
// half-away-from-zero.
func round2(v float64) float64 {
	if v < 0 {
		return -math.Round(-v*100) / 100
	}
	return math.Round(v*100) / 100
}
