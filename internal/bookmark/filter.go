package bookmark

import (
	"strings"
	"time"
)

// DateRange selects the creation-time window a list view shows.
type DateRange string

const (
	RangeAll   DateRange = "all"
	RangeToday DateRange = "today"
	Range7Days DateRange = "7days"
	RangeMonth DateRange = "month"
)

// MatchesSearch reports whether q is a case-insensitive substring of
// the title or the URL. An empty query matches everything.
func MatchesSearch(b Bookmark, q string) bool {
	if q == "" {
		return true
	}
	q = strings.ToLower(q)
	return strings.Contains(strings.ToLower(b.Title), q) ||
		strings.Contains(strings.ToLower(b.URL), q)
}

// MatchesRange evaluates the date predicate against now.
// "today" and "month" are calendar comparisons in now's location;
// "7days" is a rolling 168h window, fractional elapsed time allowed.
// Unknown ranges behave like RangeAll.
func MatchesRange(created time.Time, r DateRange, now time.Time) bool {
	switch r {
	case RangeToday:
		c := created.In(now.Location())
		cy, cm, cd := c.Date()
		ny, nm, nd := now.Date()
		return cy == ny && cm == nm && cd == nd
	case Range7Days:
		return now.Sub(created) <= 7*24*time.Hour
	case RangeMonth:
		c := created.In(now.Location())
		return c.Month() == now.Month() && c.Year() == now.Year()
	default:
		return true
	}
}

// Filter applies search and date predicates to an already-ordered
// list and preserves its order. The two predicates are independent,
// so applying them in either order yields the same set.
func Filter(list []Bookmark, q string, r DateRange, now time.Time) []Bookmark {
	out := make([]Bookmark, 0, len(list))
	for _, b := range list {
		if MatchesSearch(b, q) && MatchesRange(b.CreatedAt, r, now) {
			out = append(out, b)
		}
	}
	return out
}

// DaysLeft is the retention countdown shown for a trashed record:
// retentionDays minus whole days elapsed since deletion, floored at 0.
func DaysLeft(deletedAt, now time.Time, retentionDays int) int {
	elapsed := int(now.Sub(deletedAt) / (24 * time.Hour))
	left := retentionDays - elapsed
	if left < 0 {
		return 0
	}
	return left
}
