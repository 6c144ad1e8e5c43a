package model

import "github.com/crimson-sun/errboard/internal/view"

// Bucket is one grouped count.
type Bucket struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Series is an ordered list of buckets with unique keys.
type Series struct {
	Name    string   `json:"name"`
	Buckets []Bucket `json:"buckets"`
}

// Keys returns the bucket keys in order.
func (s Series) Keys() []string {
	keys := make([]string, len(s.Buckets))
	for i, b := range s.Buckets {
		keys[i] = b.Key
	}
	return keys
}

// Counts returns the bucket counts in order.
func (s Series) Counts() []int {
	counts := make([]int, len(s.Buckets))
	for i, b := range s.Buckets {
		counts[i] = b.Count
	}
	return counts
}

// Total is the sum of all bucket counts.
func (s Series) Total() int {
	n := 0
	for _, b := range s.Buckets {
		n += b.Count
	}
	return n
}

// AggregationResult is the grouped-count output of applying a view to a
// filtered event set. Single-dimension views produce one series; the
// process/event view produces two.
type AggregationResult struct {
	View   view.ID  `json:"view"`
	Series []Series `json:"series"`
}

// Empty reports whether no series has any bucket.
func (r AggregationResult) Empty() bool {
	for _, s := range r.Series {
		if len(s.Buckets) > 0 {
			return false
		}
	}
	return true
}
