package algorithm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommend_SingleCriticalEscapesBudget(t *testing.T) {
	last := day(4)
	today := day(10)
	states := []TaskState{
		{ID: "1", Name: "跑步", EnergyCost: 3, ExpectedInterval: 2, Importance: 5, LastDoneDate: &last},
	}
	Annotate(states, today)

	recommended, others := Recommend(states, 15, 5)
	require.Len(t, recommended, 1)
	assert.Equal(t, "1", recommended[0].ID)
	assert.Empty(t, others)
}

func TestRecommend_KnapsackTie(t *testing.T) {
	states := []TaskState{
		{ID: "7", Urgency: 1.0, EnergyCost: 2},
		{ID: "4", Urgency: 1.0, EnergyCost: 3},
	}

	recommended, others := Recommend(states, 4, 5)
	require.Len(t, recommended, 1)
	assert.Equal(t, "7", recommended[0].ID)
	require.Len(t, others, 1)
	assert.Equal(t, "4", others[0].ID)
}

func TestRecommend_FirstTaskFreeRejectedAfterCompletion(t *testing.T) {
	states := []TaskState{
		{ID: "done", Urgency: 0, EnergyCost: 3, IsCompletedToday: true},
		{ID: "pending", Urgency: 1.0, EnergyCost: 4},
	}

	recommended, others := Recommend(states, 2, 5)
	ids := idsOf(recommended)
	assert.Contains(t, ids, "done")
	assert.NotContains(t, ids, "pending")
	assert.Len(t, others, 1)
	assert.Equal(t, "pending", others[0].ID)
}

func TestRecommend_FirstTaskFreeAdmittedWithoutCompletion(t *testing.T) {
	states := []TaskState{
		{ID: "pending", Urgency: 1.0, EnergyCost: 4},
	}

	recommended, _ := Recommend(states, 2, 5)
	require.Len(t, recommended, 1)
	assert.Equal(t, "pending", recommended[0].ID)
}

func TestRecommend_CapIncludesCompletedToday(t *testing.T) {
	states := []TaskState{
		{ID: "done-1", EnergyCost: 1, IsCompletedToday: true},
		{ID: "done-2", EnergyCost: 1, IsCompletedToday: true},
		{ID: "a", Urgency: 1.0, EnergyCost: 1},
		{ID: "b", Urgency: 0.9, EnergyCost: 1},
	}

	recommended, _ := Recommend(states, 10, 1)
	// cap = 1 + 2 completed = 3.
	assert.Len(t, recommended, 3)
}

func TestRecommend_OrderDoesNotAffectPartition(t *testing.T) {
	a := []TaskState{
		{ID: "1", Urgency: 3.0, EnergyCost: 2},
		{ID: "2", Urgency: 0.5, EnergyCost: 1},
	}
	b := []TaskState{
		{ID: "2", Urgency: 0.5, EnergyCost: 1},
		{ID: "1", Urgency: 3.0, EnergyCost: 2},
	}

	recA, othA := Recommend(a, 10, 5)
	recB, othB := Recommend(b, 10, 5)
	assert.ElementsMatch(t, idsOf(recA), idsOf(recB))
	assert.ElementsMatch(t, idsOf(othA), idsOf(othB))
}

func idsOf(states []TaskState) []string {
	ids := make([]string, len(states))
	for i, s := range states {
		ids[i] = s.ID
	}
	return ids
}
