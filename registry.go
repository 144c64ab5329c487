package chemfig

import "strconv"

// Registry holds the numbering state of one conversion run: a counter per
// figure class and the label assigned to each id tag. Both passes of a run
// share one Registry; independent runs must not share one, or counts from
// unrelated documents would accumulate.
//
// Registry is not safe for concurrent use. The filter is single-threaded, so
// no locking is needed.
type Registry struct {
	counters map[string]int
	labels   map[string]string
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		counters: make(map[string]int),
		labels:   make(map[string]string),
	}
}

// AssignNumber increments and returns the counter for class, creating it at
// 1 on first use. Classes are discovered lazily; there is no predeclared set.
func (r *Registry) AssignNumber(class string) int {
	r.counters[class]++
	return r.counters[class]
}

// RecordLabel stores the decimal string of number under id. A duplicate id
// silently overwrites the earlier label; citations then resolve to the last
// figure carrying the id. Documented limitation, not a bug to fix here.
func (r *Registry) RecordLabel(id string, number int) {
	r.labels[id] = strconv.Itoa(number)
}

// LookupLabel returns the label recorded for id, if any.
func (r *Registry) LookupLabel(id string) (string, bool) {
	label, ok := r.labels[id]
	return label, ok
}

// Counts returns a copy of the per-class counters, for diagnostics.
func (r *Registry) Counts() map[string]int {
	counts := make(map[string]int, len(r.counters))
	for class, n := range r.counters {
		counts[class] = n
	}
	return counts
}
