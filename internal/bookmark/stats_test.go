package bookmark

import (
	"testing"
	"time"
)

var statsNow = time.Date(2026, time.August, 27, 12, 0, 0, 0, time.UTC)

func TestComputeStatsCounts(t *testing.T) {
	threeDaysAgo := statsNow.AddDate(0, 0, -3)
	deleted := statsNow.Add(-time.Hour)

	records := []Bookmark{
		{CreatedAt: statsNow},
		{CreatedAt: statsNow.Add(-2 * time.Hour)},
		{CreatedAt: threeDaysAgo, DeletedAt: &deleted},
	}

	st := ComputeStats(records, statsNow)

	if st.Total != 3 {
		t.Errorf("Total = %d, want 3", st.Total)
	}
	if st.Deleted != 1 {
		t.Errorf("Deleted = %d, want 1", st.Deleted)
	}
	if st.Pinned != 0 {
		t.Errorf("Pinned = %d, want 0", st.Pinned)
	}
	if st.AvgPerDay != 0.4 {
		t.Errorf("AvgPerDay = %v, want 0.4", st.AvgPerDay)
	}

	byDay := map[string]int{}
	for _, a := range st.Activity {
		byDay[a.Day] = a.Count
	}
	if got := byDay[statsNow.Format("2006-01-02")]; got != 2 {
		t.Errorf("today bucket = %d, want 2", got)
	}
	// trashed records still count toward the day they were created
	if got := byDay[threeDaysAgo.Format("2006-01-02")]; got != 1 {
		t.Errorf("3-days-ago bucket = %d, want 1", got)
	}
	for day, count := range byDay {
		if day != statsNow.Format("2006-01-02") && day != threeDaysAgo.Format("2006-01-02") && count != 0 {
			t.Errorf("bucket %s = %d, want 0", day, count)
		}
	}
}

// The histogram always has exactly 7 buckets, 6 days ago through
// today in order, even with no records at all.
func TestComputeStatsHistogramComplete(t *testing.T) {
	st := ComputeStats(nil, statsNow)

	if len(st.Activity) != 7 {
		t.Fatalf("len(Activity) = %d, want 7", len(st.Activity))
	}
	for i, a := range st.Activity {
		want := statsNow.AddDate(0, 0, i-6).Format("2006-01-02")
		if a.Day != want {
			t.Errorf("bucket %d day = %s, want %s", i, a.Day, want)
		}
		if a.Count != 0 {
			t.Errorf("bucket %d count = %d, want 0", i, a.Count)
		}
		if a.Bar != 12 {
			t.Errorf("bucket %d bar = %d, want minimum 12", i, a.Bar)
		}
	}
	if st.Total != 0 || st.Deleted != 0 || st.Pinned != 0 {
		t.Errorf("counts = %d/%d/%d, want all 0", st.Total, st.Deleted, st.Pinned)
	}
}

func TestBarHeight(t *testing.T) {
	tests := []struct {
		count int
		want  int
	}{
		{0, 12},
		{1, 24},
		{5, 120},
		{6, 140},
		{100, 140},
	}

	for _, tt := range tests {
		if got := barHeight(tt.count); got != tt.want {
			t.Errorf("barHeight(%d) = %d, want %d", tt.count, got, tt.want)
		}
	}
}

func TestComputeStatsPinned(t *testing.T) {
	records := []Bookmark{
		{CreatedAt: statsNow, Pinned: true},
		{CreatedAt: statsNow, Pinned: false},
	}
	st := ComputeStats(records, statsNow)
	if st.Pinned != 1 {
		t.Errorf("Pinned = %d, want 1", st.Pinned)
	}
}
