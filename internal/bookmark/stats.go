package bookmark

import (
	"math"
	"time"
)

const (
	dayKeyLayout = "2006-01-02"

	// Bar heights: zero-count buckets still render a sliver; non-zero
	// counts grow linearly and clamp at the cap.
	minBarHeight = 12
	barUnit      = 24
	barCap       = 140
)

// DayActivity is one histogram bucket: a local calendar day and how
// many bookmarks were created on it.
type DayActivity struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
	Bar   int    `json:"bar"`
}

// Stats summarizes every record an owner has, trashed ones included.
type Stats struct {
	Total     int           `json:"total"`
	Deleted   int           `json:"deleted"`
	Pinned    int           `json:"pinned"`
	AvgPerDay float64       `json:"avg_per_day"`
	Activity  []DayActivity `json:"activity"`
}

// ComputeStats reduces the owner's full record set to counts and a
// 7-day activity histogram. Buckets run from 6 days ago through today
// in chronological order and always number exactly 7; bucketing is by
// created_at only, so trashed records still count.
func ComputeStats(records []Bookmark, now time.Time) Stats {
	st := Stats{Total: len(records)}

	byDay := make(map[string]int, len(records))
	for _, b := range records {
		if b.DeletedAt != nil {
			st.Deleted++
		}
		if b.Pinned {
			st.Pinned++
		}
		key := b.CreatedAt.In(now.Location()).Format(dayKeyLayout)
		byDay[key]++
	}

	st.Activity = make([]DayActivity, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i).Format(dayKeyLayout)
		count := byDay[day]
		st.Activity = append(st.Activity, DayActivity{
			Day:   day,
			Count: count,
			Bar:   barHeight(count),
		})
	}

	st.AvgPerDay = math.Round(float64(st.Total)/7*10) / 10
	return st
}

func barHeight(count int) int {
	if count == 0 {
		return minBarHeight
	}
	if h := count * barUnit; h < barCap {
		return h
	}
	return barCap
}
