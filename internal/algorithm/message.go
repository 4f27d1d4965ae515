package algorithm

import (
	"fmt"
	"time"
)

// DailyMessage implements spec §4.7: a deterministic motivational
// message chosen from task count, the most urgent task (if any task is
// at or above CriticalThreshold), and the aggregate health score.
//
// mostUrgent is the TaskState with the highest Urgency among the user's
// tasks (callers pick it; Annotate must have already run). Pass a nil
// mostUrgent when tasksCount is 0.
func DailyMessage(healthScore float64, tasksCount int, mostUrgent *TaskState, today time.Time) string {
	if tasksCount == 0 {
		return "新的一天，新的开始！添加你想培养的习惯吧 ✨"
	}

	if mostUrgent != nil && mostUrgent.Urgency >= CriticalThreshold {
		days := "很久"
		if mostUrgent.LastDoneDate != nil {
			days = fmt.Sprintf("%d", int(today.Sub(*mostUrgent.LastDoneDate).Hours()/24))
		}
		return fmt.Sprintf("%s已经等你%s天了，今天来打个卡？ 📝", mostUrgent.Name, days)
	}

	switch {
	case healthScore >= 80:
		return "所有习惯都保持得很好！今天继续加油 💪"
	case healthScore >= 60:
		return "状态不错！选一两个任务完成就很棒了 🎯"
	case healthScore >= 40:
		return "有些习惯在想念你了，今天看看它们？ 🌱"
	default:
		return "别担心，每天进步一点点就好 🌈"
	}
}

// MostUrgent returns a pointer to the state with the highest Urgency in
// states, or nil if states is empty. Ties keep the first encountered,
// matching input order (callers typically pass tasks already sorted by
// name or creation order, so this is stable run-to-run).
func MostUrgent(states []TaskState) *TaskState {
	if len(states) == 0 {
		return nil
	}
	best := &states[0]
	for i := 1; i < len(states); i++ {
		if states[i].Urgency > best.Urgency {
			best = &states[i]
		}
	}
	return best
}
