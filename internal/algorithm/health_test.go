package algorithm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealth_NeverDone(t *testing.T) {
	assert.Equal(t, 30, Health(nil, 7, day(10)))
}

func TestHealth_DoneToday(t *testing.T) {
	last := day(10)
	assert.Equal(t, 100, Health(&last, 7, day(10)))
}

func TestHealth_DecaysWithinInterval(t *testing.T) {
	last := day(0)
	// interval=10, days=5 -> decay_per_day=5, 100-25=75.
	assert.Equal(t, 75, Health(&last, 10, day(5)))
}

func TestHealth_FloorsAtTen(t *testing.T) {
	last := day(0)
	// interval=5, days=100 way overdue -> hits the 10 floor.
	assert.Equal(t, 10, Health(&last, 5, day(100)))
}

func TestHealth_ZeroIntervalGuardedToOne(t *testing.T) {
	last := day(9)
	assert.Equal(t, Health(&last, 1, day(10)), Health(&last, 0, day(10)))
}
