package csp

import (
	"cmp"
	"slices"
)

type backtrackingSearcher struct {
	useMRV bool
	useLCV bool
}

func (searcher *backtrackingSearcher) Search(store DomainStore) (Assignment, uint64, bool) {
	assignment := make(Assignment)
	var nodes uint64
	if !searcher.backtrack(store, assignment, &nodes) {
		return nil, nodes, false
	}
	return assignment, nodes, true
}

func (searcher *backtrackingSearcher) backtrack(store DomainStore, assignment Assignment, nodes *uint64) bool {
	*nodes++
	if len(assignment) == store.Variables() {
		return true
	}

	variable := searcher.selectVariable(store, assignment)
	for _, value := range searcher.orderValues(store, assignment, variable) {
		if !consistent(variable, value, assignment) {
			continue
		}

		assignment[variable] = value
		if searcher.backtrack(store, assignment, nodes) {
			return true // First solution wins
		}
		delete(assignment, variable)
	}

	return false
}

// selectVariable picks the next unassigned variable. Under MRV it is the one
// with the fewest remaining domain values, ties broken toward the larger
// index (i.e. minimizing the pair (size, -index)).
func (searcher *backtrackingSearcher) selectVariable(store DomainStore, assignment Assignment) int {
	selected := -1
	for variable := range store.Variables() {
		if _, assigned := assignment[variable]; assigned {
			continue
		}
		if selected == -1 {
			selected = variable
			continue
		}
		if !searcher.useMRV {
			break // Sequential order: the first unassigned variable wins
		}
		if store.Size(variable) <= store.Size(selected) {
			selected = variable
		}
	}
	return selected
}

// orderValues ranks the variable's remaining values. Under LCV a value scores
// the number of (unassigned-neighbor, candidate) combinations that stay
// consistent once the value is tentatively committed, and values are tried in
// descending score order; the sort is stable, so equal scores keep domain
// order. Without LCV the domain order is used as-is.
func (searcher *backtrackingSearcher) orderValues(store DomainStore, assignment Assignment, variable int) []int {
	values := slices.Clone(mustGet(store, variable))
	if !searcher.useLCV {
		return values
	}

	scores := make(map[int]uint64, len(values))
	for _, value := range values {
		scores[value] = lcvScore(store, assignment, variable, value)
	}
	slices.SortStableFunc(values, func(a, b int) int {
		return cmp.Compare(scores[b], scores[a])
	})
	return values
}

func lcvScore(store DomainStore, assignment Assignment, variable, value int) uint64 {
	assignment[variable] = value
	defer delete(assignment, variable)

	var count uint64
	for neighbor := range store.Variables() {
		if neighbor == variable {
			continue
		}
		if _, assigned := assignment[neighbor]; assigned {
			continue
		}
		for _, candidate := range mustGet(store, neighbor) {
			if consistent(neighbor, candidate, assignment) {
				count++
			}
		}
	}
	return count
}

// consistent checks the value against every variable already committed to the
// assignment, using the full non-attack predicate.
func consistent(variable, value int, assignment Assignment) bool {
	for other, assigned := range assignment {
		if other == variable {
			continue
		}
		if !Compatible(variable, value, other, assigned) {
			return false
		}
	}
	return true
}
