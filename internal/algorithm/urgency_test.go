package algorithm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC)
}

func TestUrgency_NeverDone(t *testing.T) {
	// last_done = ⊥ -> days_since = 2*interval = 10, base = 2.0,
	// overdue = 5, overdue_factor = 1+ln(2.5) ≈ 1.9163, weight = 0.6.
	u := Urgency(nil, 5, 1, day(10))
	assert.InDelta(t, 2.30, u, 0.01)
}

func TestUrgency_SingleCriticalExample(t *testing.T) {
	// spec §8 scenario 2: interval=2, importance=5, last_done = today-6.
	last := day(4)
	today := day(10)
	u := Urgency(&last, 2, 5, today)
	assert.InDelta(t, 7.51, u, 0.01)
	assert.Equal(t, Critical, Level(u))
}

func TestUrgency_ZeroIntervalGuardedToOne(t *testing.T) {
	last := day(9)
	today := day(10)
	withGuard := Urgency(&last, 0, 1, today)
	explicit := Urgency(&last, 1, 1, today)
	assert.Equal(t, explicit, withGuard)
}

func TestUrgency_ImportanceOrdering(t *testing.T) {
	last := day(1)
	today := day(10)
	low := Urgency(&last, 5, 1, today)
	high := Urgency(&last, 5, 5, today)
	assert.Greater(t, high, low)
}

func TestUrgency_MonotoneInToday(t *testing.T) {
	last := day(1)
	earlier := Urgency(&last, 5, 3, day(5))
	later := Urgency(&last, 5, 3, day(9))
	assert.GreaterOrEqual(t, later, earlier)
}

func TestLevel_Bands(t *testing.T) {
	assert.Equal(t, Low, Level(0))
	assert.Equal(t, Low, Level(0.69))
	assert.Equal(t, Normal, Level(0.7))
	assert.Equal(t, Normal, Level(1.29))
	assert.Equal(t, High, Level(1.3))
	assert.Equal(t, High, Level(1.99))
	assert.Equal(t, Critical, Level(2.0))
	assert.Equal(t, Critical, Level(100))
}

func TestLevel_NegativeClassifiesLow(t *testing.T) {
	assert.Equal(t, Low, Level(-1))
}
