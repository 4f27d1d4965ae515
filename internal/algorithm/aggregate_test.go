package algorithm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregate_Empty(t *testing.T) {
	a := Aggregate(nil)
	assert.Equal(t, StatusEmpty, a.Status)
	assert.Equal(t, 100.0, a.Score)
}

func TestAggregate_WeightedByImportance(t *testing.T) {
	states := []TaskState{
		{Health: 100, Importance: 5},
		{Health: 0, Importance: 1},
	}
	a := Aggregate(states)
	// (100*5 + 0*1) / 6 = 83.33
	assert.InDelta(t, 83.3, a.Score, 0.1)
	assert.Equal(t, StatusThriving, a.Status)
}

func TestAggregate_Bands(t *testing.T) {
	cases := []struct {
		health int
		status HealthStatus
	}{
		{90, StatusThriving},
		{70, StatusHealthy},
		{50, StatusNeedsAttention},
		{20, StatusStruggling},
	}
	for _, c := range cases {
		a := Aggregate([]TaskState{{Health: c.health, Importance: 1}})
		assert.Equal(t, c.status, a.Status, "health=%d", c.health)
	}
}
