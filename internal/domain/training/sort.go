package training

import "sort"

// SortByDateDesc orders sessions newest first. Sessions on the same day keep
// their relative order.
func SortByDateDesc(sessions []TrainingSession) {
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].Date.Compare(sessions[j].Date) > 0
	})
}
