// Package aggregate groups filtered events by a view's dimension and
// produces ordered count series. Every function here is pure.
package aggregate

import (
	"sort"
	"strconv"
	"time"

	"github.com/crimson-sun/errboard/internal/model"
	"github.com/crimson-sun/errboard/internal/view"
	"github.com/crimson-sun/errboard/internal/viewerr"
)

// Series names used by the process/event view.
const (
	SeriesProcess = "process"
	SeriesEvent   = "event"
)

// Aggregate computes the grouped counts for the given view. Time-based views
// fail with viewerr.ErrNoData when no event has a timestamp; identifiers
// outside the fixed set fail with viewerr.ErrUnsupportedView.
func Aggregate(events []model.Event, id view.ID) (model.AggregationResult, error) {
	switch id {
	case view.ErrorsByDay:
		if !anyTimestamp(events) {
			return model.AggregationResult{}, viewerr.NoData(string(id))
		}
		return single(id, ByDay(events)), nil
	case view.ErrorsByHour:
		if !anyTimestamp(events) {
			return model.AggregationResult{}, viewerr.NoData(string(id))
		}
		return single(id, ByHour(events)), nil
	case view.ErrorsBySource:
		return single(id, ByFirstSeen(events, func(e model.Event) string { return e.Source })), nil
	case view.ErrorsByTask:
		return single(id, ByFirstSeen(events, func(e model.Event) string { return e.TaskCategory })), nil
	case view.ErrorsByProcessEvent:
		return model.AggregationResult{
			View: id,
			Series: []model.Series{
				{Name: SeriesProcess, Buckets: ByIdentifier(events, func(e model.Event) string { return e.ProcessID })},
				{Name: SeriesEvent, Buckets: ByIdentifier(events, func(e model.Event) string { return e.EventID })},
			},
		}, nil
	default:
		return model.AggregationResult{}, viewerr.UnsupportedView(string(id))
	}
}

func single(id view.ID, buckets []model.Bucket) model.AggregationResult {
	return model.AggregationResult{View: id, Series: []model.Series{{Buckets: buckets}}}
}

func anyTimestamp(events []model.Event) bool {
	for _, e := range events {
		if e.HasTimestamp() {
			return true
		}
	}
	return false
}

// ByDay counts events per calendar date of their timestamp, in the
// timestamp's own location. Keys are YYYY-MM-DD, ascending. Events without
// a timestamp are skipped.
func ByDay(events []model.Event) []model.Bucket {
	counts := make(map[civilDate]int)
	for _, e := range events {
		if !e.HasTimestamp() {
			continue
		}
		y, m, d := e.Timestamp.Date()
		counts[civilDate{y, m, d}]++
	}

	days := make([]civilDate, 0, len(counts))
	for day := range counts {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].before(days[j]) })

	buckets := make([]model.Bucket, 0, len(days))
	for _, day := range days {
		buckets = append(buckets, model.Bucket{Key: day.String(), Count: counts[day]})
	}
	return buckets
}

type civilDate struct {
	year  int
	month time.Month
	day   int
}

func (c civilDate) before(o civilDate) bool {
	if c.year != o.year {
		return c.year < o.year
	}
	if c.month != o.month {
		return c.month < o.month
	}
	return c.day < o.day
}

func (c civilDate) String() string {
	return time.Date(c.year, c.month, c.day, 0, 0, 0, 0, time.UTC).Format(time.DateOnly)
}

// ByHour counts events per hour of day (0-23), ascending. Hours with no
// events are omitted. Events without a timestamp are skipped.
func ByHour(events []model.Event) []model.Bucket {
	var counts [24]int
	for _, e := range events {
		if !e.HasTimestamp() {
			continue
		}
		counts[e.Timestamp.Hour()]++
	}

	var buckets []model.Bucket
	for hour, n := range counts {
		if n > 0 {
			buckets = append(buckets, model.Bucket{Key: strconv.Itoa(hour), Count: n})
		}
	}
	if buckets == nil {
		buckets = []model.Bucket{}
	}
	return buckets
}

// ByFirstSeen counts events per key in first-encounter order. Empty keys
// are treated as missing and skipped.
func ByFirstSeen(events []model.Event, key func(model.Event) string) []model.Bucket {
	// Ordered map: preserve first-occurrence order.
	index := make(map[string]int)
	buckets := []model.Bucket{}
	for _, e := range events {
		k := key(e)
		if k == "" {
			continue
		}
		if i, ok := index[k]; ok {
			buckets[i].Count++
			continue
		}
		index[k] = len(buckets)
		buckets = append(buckets, model.Bucket{Key: k, Count: 1})
	}
	return buckets
}

// ByIdentifier counts events per identifier with keys in ascending order.
// Numeric identifiers sort numerically and before non-numeric ones.
func ByIdentifier(events []model.Event, key func(model.Event) string) []model.Bucket {
	buckets := ByFirstSeen(events, key)
	sort.SliceStable(buckets, func(i, j int) bool {
		return lessIdentifier(buckets[i].Key, buckets[j].Key)
	})
	return buckets
}

func lessIdentifier(a, b string) bool {
	na, errA := strconv.ParseInt(a, 10, 64)
	nb, errB := strconv.ParseInt(b, 10, 64)
	switch {
	case errA == nil && errB == nil:
		if na != nb {
			return na < nb
		}
		return a < b
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}
