package training

import (
	"context"
	"sort"
)

// TagCount is the number of sessions carrying a tag.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// Summary aggregates the whole training log.
type Summary struct {
	Sessions  int        `json:"sessions"`
	Exercises int        `json:"exercises"`
	Volume    int        `json:"volume"`
	LastDate  *Date      `json:"last_date,omitempty"`
	ByTag     []TagCount `json:"by_tag"`
}

// Summarize computes a Summary over sessions. Tags are ordered by count, then name.
func Summarize(sessions []TrainingSession) Summary {
	sum := Summary{Sessions: len(sessions)}
	counts := make(map[string]int)
	for _, sess := range sessions {
		sum.Exercises += len(sess.Exercises)
		sum.Volume += sess.Volume()
		counts[sess.Tag]++
		if sum.LastDate == nil || sess.Date.Compare(*sum.LastDate) > 0 {
			d := sess.Date
			sum.LastDate = &d
		}
	}
	sum.ByTag = make([]TagCount, 0, len(counts))
	for tag, n := range counts {
		sum.ByTag = append(sum.ByTag, TagCount{Tag: tag, Count: n})
	}
	sort.Slice(sum.ByTag, func(i, j int) bool {
		if sum.ByTag[i].Count != sum.ByTag[j].Count {
			return sum.ByTag[i].Count > sum.ByTag[j].Count
		}
		return sum.ByTag[i].Tag < sum.ByTag[j].Tag
	})
	return sum
}

// Stats summarises every stored session.
func (s *Service) Stats(ctx context.Context) Summary {
	return Summarize(s.repo.List(ctx))
}
