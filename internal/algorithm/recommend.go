package algorithm

import "sort"

// Recommend partitions tasks into (recommended, others) per spec §4.4.
// Callers must have already run Annotate (and set IsCompletedToday) on
// every state; Recommend does not mutate its input and does not call
// Annotate itself.
//
// Algorithm:
//  1. Completed-today tasks go into recommended first, in input order.
//     cap = maxTasks + |completed_today|; remaining = budget - energy
//     already spent on completions (may go negative).
//  2. Critical pass: tasks with urgency >= 2.0, sorted by urgency desc
//     (ties by ID asc), admitted until the cap is hit, ignoring budget.
//  3. Value pass: remaining tasks sorted by urgency/max(energy_cost,1)
//     desc (ties by ID asc); admitted while energy_cost <= remaining, or
//     while remaining == budget (first-task-free rule).
//  4. Everything else goes to others, in input order.
func Recommend(states []TaskState, budget, maxTasks int) (recommended, others []TaskState) {
	completedToday := make([]TaskState, 0, len(states))
	pending := make([]TaskState, 0, len(states))
	for _, s := range states {
		if s.IsCompletedToday {
			completedToday = append(completedToday, s)
		} else {
			pending = append(pending, s)
		}
	}

	recommended = append(recommended, completedToday...)
	slotCap := maxTasks + len(completedToday)
	remaining := budget
	for _, s := range completedToday {
		remaining -= s.EnergyCost
	}

	inRecommended := make(map[string]bool, len(recommended))
	for _, s := range recommended {
		inRecommended[s.ID] = true
	}

	var criticals, normals []TaskState
	for _, s := range pending {
		if s.Urgency >= CriticalThreshold {
			criticals = append(criticals, s)
		} else {
			normals = append(normals, s)
		}
	}

	sort.Slice(criticals, func(i, j int) bool {
		if criticals[i].Urgency != criticals[j].Urgency {
			return criticals[i].Urgency > criticals[j].Urgency
		}
		return criticals[i].ID < criticals[j].ID
	})
	for _, s := range criticals {
		if len(recommended) >= slotCap {
			break
		}
		recommended = append(recommended, s)
		inRecommended[s.ID] = true
		remaining -= s.EnergyCost
	}

	sort.Slice(normals, func(i, j int) bool {
		ri := normals[i].Urgency / float64(max(normals[i].EnergyCost, 1))
		rj := normals[j].Urgency / float64(max(normals[j].EnergyCost, 1))
		if ri != rj {
			return ri > rj
		}
		return normals[i].ID < normals[j].ID
	})
	for _, s := range normals {
		if len(recommended) >= slotCap {
			break
		}
		if s.EnergyCost <= remaining || remaining == budget {
			recommended = append(recommended, s)
			inRecommended[s.ID] = true
			remaining -= s.EnergyCost
		}
	}

	for _, s := range states {
		if !inRecommended[s.ID] {
			others = append(others, s)
		}
	}

	return recommended, others
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
