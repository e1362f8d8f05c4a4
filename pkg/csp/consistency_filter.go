package csp

// ConsistencyFilter prunes domain values that cannot participate in any
// complete non-attacking placement.
type ConsistencyFilter interface {
	// Filter enforces arc consistency over the store, shrinking domains in
	// place. It returns false when some domain empties during revision,
	// proving the instance has no solution. A true result means every
	// remaining value has support in every neighboring domain; it does not
	// guarantee that a solution exists.
	Filter(store DomainStore) bool
}

// NewConsistencyFilter creates an AC-3 filter.
func NewConsistencyFilter() ConsistencyFilter {
	return &ac3Filter{}
}

// NewPassthroughFilter creates a filter that leaves every domain untouched
// and never reports infeasibility, leaving all pruning to the search. Useful
// as a baseline when measuring what AC-3 buys.
func NewPassthroughFilter() ConsistencyFilter {
	return &passthroughFilter{}
}

type passthroughFilter struct{}

func (filter *passthroughFilter) Filter(DomainStore) bool {
	return true
}
