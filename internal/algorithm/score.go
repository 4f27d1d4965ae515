package algorithm

import "math"

// DailyScoreGrade is the qualitative band a daily score falls into (spec §4.5).
type DailyScoreGrade string

const (
	GradeExcellent DailyScoreGrade = "excellent"
	GradeGood      DailyScoreGrade = "good"
	GradeOkay      DailyScoreGrade = "okay"
	GradeLight     DailyScoreGrade = "light"
	GradeRest      DailyScoreGrade = "rest"
)

// DailyScoreCap is the hard ceiling applied to the total score (spec §4.5).
const DailyScoreCap = 120

// DailyScore holds the day's score breakdown, grade, and fixed message.
type DailyScore struct {
	BaseScore    float64
	UrgentBonus  float64
	TotalScore   float64
	EnergySpent  int
	TasksDone    int
	Grade        DailyScoreGrade
	Message      string
}

// ScoreDay implements spec §4.5: base score is the share of the energy
// budget spent (capped at 100), urgent_bonus rewards urgency accumulated
// by the completed tasks (urgency summed across completions, *3, capped
// at 20), total is their sum capped at DailyScoreCap, then graded.
//
// completed holds the TaskState of every task completed today, with
// Urgency already computed by Annotate at scoring time.
func ScoreDay(completed []TaskState, dailyEnergyBudget int) DailyScore {
	if len(completed) == 0 {
		return DailyScore{Grade: GradeRest, Message: "今天是休息日 🌙"}
	}

	energySpent := 0
	urgencySum := 0.0
	for _, t := range completed {
		energySpent += t.EnergyCost
		urgencySum += t.Urgency
	}

	energyRatio := float64(energySpent) / float64(maxInt(dailyEnergyBudget, 1))
	baseScore := math.Min(100, energyRatio*100)
	urgentBonus := math.Min(20, urgencySum*3)
	totalScore := math.Min(DailyScoreCap, baseScore+urgentBonus)

	grade, message := gradeScore(totalScore)
	return DailyScore{
		BaseScore:   round1(baseScore),
		UrgentBonus: round1(urgentBonus),
		TotalScore:  round1(totalScore),
		EnergySpent: energySpent,
		TasksDone:   len(completed),
		Grade:       grade,
		Message:     message,
	}
}

func gradeScore(total float64) (DailyScoreGrade, string) {
	switch {
	case total >= 100:
		return GradeExcellent, "太棒了！超额完成！ 🌟"
	case total >= 80:
		return GradeGood, "干得不错！保持下去 💪"
	case total >= 50:
		return GradeOkay, "不错的一天！ 👍"
	default:
		return GradeLight, "轻松的一天也很好 🌿"
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
