package algorithm

// UrgencyLevel is the qualitative band a raw urgency scalar falls into
// (spec §4.3). Negative urgency cannot occur from Urgency's own output
// but is classified as Low, per spec §9's open-question resolution.
type UrgencyLevel string

const (
	Low      UrgencyLevel = "low"
	Normal   UrgencyLevel = "normal"
	High     UrgencyLevel = "high"
	Critical UrgencyLevel = "critical"
)

// CriticalThreshold is the urgency value at and above which a task is
// "critical" — it escapes the energy budget in the recommender (spec §4.4)
// and is surfaced directly in the motivational message (spec §4.7).
const CriticalThreshold = 2.0

// Level classifies a raw urgency value into its band.
func Level(urgency float64) UrgencyLevel {
	switch {
	case urgency < 0.7:
		return Low
	case urgency < 1.3:
		return Normal
	case urgency < CriticalThreshold:
		return High
	default:
		return Critical
	}
}
