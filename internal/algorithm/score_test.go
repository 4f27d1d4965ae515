package algorithm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreDay_Rest(t *testing.T) {
	s := ScoreDay(nil, 15)
	assert.Equal(t, GradeRest, s.Grade)
	assert.Equal(t, 0.0, s.TotalScore)
}

func TestScoreDay_CapsAtTotal(t *testing.T) {
	completed := []TaskState{
		{EnergyCost: 30, Urgency: 10},
	}
	s := ScoreDay(completed, 5)
	assert.LessOrEqual(t, s.TotalScore, float64(DailyScoreCap))
	assert.Equal(t, GradeExcellent, s.Grade)
}

func TestScoreDay_PureFunctionOfEnergyAndUrgency(t *testing.T) {
	a := []TaskState{{ID: "1", EnergyCost: 2, Urgency: 1.0}, {ID: "2", EnergyCost: 3, Urgency: 0.5}}
	b := []TaskState{{ID: "2", EnergyCost: 3, Urgency: 0.5}, {ID: "1", EnergyCost: 2, Urgency: 1.0}}
	assert.Equal(t, ScoreDay(a, 10), ScoreDay(b, 10))
}

func TestScoreDay_Grades(t *testing.T) {
	cases := []struct {
		energySpent int
		budget      int
		wantGrade   DailyScoreGrade
	}{
		{energySpent: 10, budget: 10, wantGrade: GradeExcellent}, // 100
		{energySpent: 8, budget: 10, wantGrade: GradeGood},       // 80
		{energySpent: 5, budget: 10, wantGrade: GradeOkay},       // 50
		{energySpent: 1, budget: 10, wantGrade: GradeLight},      // 10
	}
	for _, c := range cases {
		s := ScoreDay([]TaskState{{EnergyCost: c.energySpent}}, c.budget)
		assert.Equal(t, c.wantGrade, s.Grade, "energySpent=%d budget=%d", c.energySpent, c.budget)
	}
}
