package keywords

import "sort"

// Counter accumulates term frequencies while remembering each term's
// first-occurrence position, so rankings are stable and deterministic
// regardless of map iteration order.
type Counter struct {
	counts map[string]int
	first  map[string]int
	seen   int
}

func NewCounter() *Counter {
	return &Counter{
		counts: make(map[string]int),
		first:  make(map[string]int),
	}
}

func (c *Counter) Add(term string) {
	if _, ok := c.counts[term]; !ok {
		c.first[term] = c.seen
	}
	c.counts[term]++
	c.seen++
}

func (c *Counter) AddAll(terms []string) {
	for _, t := range terms {
		c.Add(t)
	}
}

func (c *Counter) Len() int {
	return len(c.counts)
}

// Counts returns a copy of the raw term frequencies.
func (c *Counter) Counts() map[string]int {
	out := make(map[string]int, len(c.counts))
	for term, n := range c.counts {
		out[term] = n
	}
	return out
}

// Top returns up to max terms with frequency >= minFreq, ordered by
// descending frequency, ties broken by first occurrence. max <= 0
// means no limit.
func (c *Counter) Top(minFreq, max int) []string {
	terms := make([]string, 0, len(c.counts))
	for term, n := range c.counts {
		if n >= minFreq {
			terms = append(terms, term)
		}
	}

	sort.Slice(terms, func(i, j int) bool {
		ni, nj := c.counts[terms[i]], c.counts[terms[j]]
		if ni != nj {
			return ni > nj
		}
		return c.first[terms[i]] < c.first[terms[j]]
	})

	if max > 0 && len(terms) > max {
		terms = terms[:max]
	}
	return terms
}
