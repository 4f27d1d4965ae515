package algorithm

// HealthStatus is the qualitative band the aggregate health score falls
// into (spec §4.6).
type HealthStatus string

const (
	StatusThriving       HealthStatus = "thriving"
	StatusHealthy        HealthStatus = "healthy"
	StatusNeedsAttention HealthStatus = "needs_attention"
	StatusStruggling     HealthStatus = "struggling"
	StatusEmpty          HealthStatus = "empty"
)

// AggregateHealth is the importance-weighted rollup of every task's
// health, with the status band, icon and fixed message attached.
type AggregateHealth struct {
	Score   float64
	Status  HealthStatus
	Icon    string
	Message string
}

// Aggregate implements spec §4.6: the importance-weighted mean of every
// task's Health, banded into a status with a fixed icon and message. A
// user with no tasks gets the "empty" band rather than a division by
// zero.
func Aggregate(states []TaskState) AggregateHealth {
	if len(states) == 0 {
		return AggregateHealth{Score: 100, Status: StatusEmpty, Icon: "🌱", Message: "添加你的第一个习惯吧！"}
	}

	weightedSum := 0.0
	weightTotal := 0.0
	for _, s := range states {
		weightedSum += float64(s.Health) * float64(s.Importance)
		weightTotal += float64(s.Importance)
	}
	avgHealth := weightedSum / weightTotal

	status, icon, message := bandHealth(avgHealth)
	return AggregateHealth{Score: round1(avgHealth), Status: status, Icon: icon, Message: message}
}

func bandHealth(avg float64) (HealthStatus, string, string) {
	switch {
	case avg >= 80:
		return StatusThriving, "🌳", "习惯花园一片繁茂！"
	case avg >= 60:
		return StatusHealthy, "🌿", "整体状态良好"
	case avg >= 40:
		return StatusNeedsAttention, "🌱", "有些习惯需要关注了"
	default:
		return StatusStruggling, "🥀", "花园需要照料了..."
	}
}
