package stylesnatcher

import "sort"

// orderedCounter counts string occurrences while preserving first-insertion
// order. Ranking ties are broken by the order in which keys were first seen,
// so extraction output is deterministic for a given input text.
type orderedCounter struct {
	counts map[string]int
	order  []string
}

func newOrderedCounter() *orderedCounter {
	return &orderedCounter{counts: make(map[string]int)}
}

// add increments the count for key, registering it on first sight.
func (c *orderedCounter) add(key string) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

// ranked returns keys sorted by descending count. Equal counts keep
// first-seen order; the sort must be stable for this to hold.
func (c *orderedCounter) ranked() []string {
	keys := make([]string, len(c.order))
	copy(keys, c.order)

	sort.SliceStable(keys, func(i, j int) bool {
		return c.counts[keys[i]] > c.counts[keys[j]]
	})

	return keys
}
