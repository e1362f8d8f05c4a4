package csp

import "fmt"

type cspSolver struct {
	filter   ConsistencyFilter
	searcher Searcher
}

func (solver *cspSolver) Solve(n int) (Solution, error) {
	if n < 1 {
		return Solution{}, fmt.Errorf("board size must be a positive integer: %v", n)
	}

	store := NewDomainStore(n)

	// Arc consistency first: an emptied domain proves infeasibility without
	// ever entering the search.
	if !solver.filter.Filter(store) {
		return Solution{Feasible: false, Stats: Stats{ValuesPruned: pruned(store)}}, nil
	}

	assignment, nodes, ok := solver.searcher.Search(store)
	solution := Solution{
		Assignment: assignment,
		Feasible:   ok,
		Stats:      Stats{ValuesPruned: pruned(store), SearchNodes: nodes},
	}
	return solution, nil
}

func (solver *cspSolver) Verify(solution Solution) bool {
	if !solution.Feasible {
		return false
	}

	n := len(solution.Assignment)
	for variable := range n {
		value, assigned := solution.Assignment[variable]
		if !assigned || value < 0 || value >= n {
			return false
		}
	}

	for variableI := range n {
		for variableJ := variableI + 1; variableJ < n; variableJ++ {
			if !Compatible(variableI, solution.Assignment[variableI], variableJ, solution.Assignment[variableJ]) {
				return false
			}
		}
	}
	return true
}

// pruned counts the values that arc consistency removed from the store's
// initially full domains.
func pruned(store DomainStore) uint64 {
	n := store.Variables()
	remaining := 0
	for variable := range n {
		remaining += store.Size(variable)
	}
	return uint64(n*n - remaining)
}
