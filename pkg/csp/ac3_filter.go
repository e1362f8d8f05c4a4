package csp

type ac3Filter struct{}

func (filter *ac3Filter) Filter(store DomainStore) bool {
	variables := store.Variables()

	// FIFO worklist seeded with every ordered pair of distinct variables.
	worklist := allArcs(variables)

	for len(worklist) > 0 {
		current := worklist[0]
		worklist = worklist[1:]

		if !revise(store, current.from, current.to) {
			continue
		}
		if store.IsEmpty(current.from) {
			return false
		}

		// The revision invalidated some of current.from's values, therefore
		// every other neighbor's consistency with it must be re-checked.
		for k := range variables {
			if k != current.from && k != current.to {
				worklist = append(worklist, arc{from: k, to: current.from})
			}
		}
	}

	return true
}

// revise removes from variableI's domain every value without support in
// variableJ's domain, i.e. every value that attacks all of variableJ's
// remaining candidates. It reports whether any value was removed.
func revise(store DomainStore, variableI, variableJ int) bool {
	domainJ := mustGet(store, variableJ)

	unsupported := make([]int, 0)
	for _, valueI := range mustGet(store, variableI) {
		supported := false
		for _, valueJ := range domainJ {
			if Compatible(variableI, valueI, variableJ, valueJ) {
				supported = true
				break
			}
		}
		if !supported {
			unsupported = append(unsupported, valueI)
		}
	}

	for _, value := range unsupported {
		store.Remove(variableI, value)
	}
	return len(unsupported) > 0
}
