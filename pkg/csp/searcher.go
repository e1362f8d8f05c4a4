package csp

// Assignment maps a column variable to its chosen row. During search it is a
// partial mapping owned by the active search frame; a complete assignment has
// one entry per variable.
type Assignment map[int]int

// Searcher explores partial assignments over the store's domains until it
// completes one that satisfies every pairwise constraint, or proves that none
// does. Failure to find a solution is a normal outcome, reported through ok,
// never through a panic or an error.
type Searcher interface {
	// Search returns a complete assignment together with the number of
	// visited search nodes. When ok is false no solution exists over the
	// given domains and the assignment is nil. Search never mutates the
	// store.
	Search(store DomainStore) (assignment Assignment, nodes uint64, ok bool)
}

// NewBacktrackingSearcher creates a depth-first searcher guided by the
// minimum-remaining-values heuristic for variable selection and the
// least-constraining-value heuristic for value ordering.
func NewBacktrackingSearcher() Searcher {
	return &backtrackingSearcher{useMRV: true, useLCV: true}
}

// NewSequentialSearcher creates a depth-first searcher that picks variables
// in ascending index order and tries values in domain order. It visits more
// nodes than the heuristic searcher but finds a solution whenever one exists,
// which makes it a useful baseline.
func NewSequentialSearcher() Searcher {
	return &backtrackingSearcher{}
}
